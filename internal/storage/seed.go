package storage

import "github.com/yungbote/careerpath-backend/internal/types"

// DefaultRoles is the role catalog seeded at process start when the
// backend holds no roles yet. SortOrder pins the listing order.
func DefaultRoles() []types.Role {
	return []types.Role{
		{
			Title:           "Senior Product Manager",
			Company:         "TechCorp",
			Location:        "Bangalore",
			SalaryRange:     "₹25-35 LPA",
			MatchPercentage: 92,
			Status:          types.RoleStatusAvailable,
			Description:     "Lead product strategy and development for enterprise software solutions.",
			SortOrder:       1,
		},
		{
			Title:           "Marketing Director",
			Company:         "StartupXYZ",
			Location:        "Mumbai",
			SalaryRange:     "₹30-40 LPA",
			MatchPercentage: 87,
			Status:          types.RoleStatusAvailable,
			Description:     "Drive marketing strategy and team growth for fintech startup.",
			SortOrder:       2,
		},
		{
			Title:           "Data Science Lead",
			Company:         "DataInc",
			Location:        "Hyderabad",
			SalaryRange:     "₹35-45 LPA",
			MatchPercentage: 78,
			Status:          types.RoleStatusPending,
			Description:     "Lead data science initiatives and ML model development.",
			SortOrder:       3,
		},
		{
			Title:           "UX Design Manager",
			Company:         "DesignStudio",
			Location:        "Pune",
			SalaryRange:     "₹22-32 LPA",
			MatchPercentage: 73,
			Status:          types.RoleStatusLocked,
			Description:     "Manage UX design team and drive user experience strategy.",
			SortOrder:       4,
		},
		{
			Title:           "Engineering Manager",
			Company:         "DevCorp",
			Location:        "Chennai",
			SalaryRange:     "₹28-38 LPA",
			MatchPercentage: 85,
			Status:          types.RoleStatusAvailable,
			Description:     "Lead engineering teams and technical architecture decisions.",
			SortOrder:       5,
		},
	}
}
