package user

// Seed 返回用户目录的种子数据。
func Seed() []User {
	return []User{
		{
			ID:        "1",
			Username:  "admin",
			Email:     "admin@nikode-api.com",
			Avatar:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400&h=400&fit=crop&crop=face",
			Role:      "admin",
			IsActive:  true,
			CreatedAt: "2024-01-01T00:00:00Z",
			UpdatedAt: "2024-01-01T00:00:00Z",
		},
		{
			ID:        "2",
			Username:  "moderator",
			Email:     "mod@nikode-api.com",
			Avatar:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face",
			Role:      "moderator",
			IsActive:  true,
			CreatedAt: "2024-01-01T00:00:00Z",
			UpdatedAt: "2024-01-01T00:00:00Z",
		},
		{
			ID:        "3",
			Username:  "anime_lover",
			Email:     "anime@example.com",
			Avatar:    "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=400&h=400&fit=crop&crop=face",
			Role:      "user",
			IsActive:  true,
			CreatedAt: "2024-01-02T00:00:00Z",
			UpdatedAt: "2024-01-02T00:00:00Z",
		},
		{
			ID:        "4",
			Username:  "goku_fan",
			Email:     "goku@example.com",
			Avatar:    "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400&h=400&fit=crop&crop=face",
			Role:      "user",
			IsActive:  true,
			CreatedAt: "2024-01-03T00:00:00Z",
			UpdatedAt: "2024-01-03T00:00:00Z",
		},
		{
			ID:        "5",
			Username:  "naruto_uzumaki",
			Email:     "naruto@example.com",
			Avatar:    "https://images.unsplash.com/photo-1541963463532-d68292c34b19?w=400&h=400&fit=crop&crop=face",
			Role:      "user",
			IsActive:  true,
			CreatedAt: "2024-01-04T00:00:00Z",
			UpdatedAt: "2024-01-04T00:00:00Z",
		},
		{
			ID:        "6",
			Username:  "luffy_captain",
			Email:     "luffy@example.com",
			Avatar:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face",
			Role:      "user",
			IsActive:  true,
			CreatedAt: "2024-01-05T00:00:00Z",
			UpdatedAt: "2024-01-05T00:00:00Z",
		},
		{
			ID:        "7",
			Username:  "saitama_sensei",
			Email:     "saitama@example.com",
			Avatar:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400&h=400&fit=crop&crop=face",
			Role:      "user",
			IsActive:  false,
			CreatedAt: "2024-01-06T00:00:00Z",
			UpdatedAt: "2024-01-06T00:00:00Z",
		},
		{
			ID:        "8",
			Username:  "eren_yeager",
			Email:     "eren@example.com",
			Avatar:    "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=400&h=400&fit=crop&crop=face",
			Role:      "user",
			IsActive:  true,
			CreatedAt: "2024-01-07T00:00:00Z",
			UpdatedAt: "2024-01-07T00:00:00Z",
		},
		{
			ID:        "9",
			Username:  "tanjiro_kamado",
			Email:     "tanjiro@example.com",
			Avatar:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face",
			Role:      "user",
			IsActive:  true,
			CreatedAt: "2024-01-08T00:00:00Z",
			UpdatedAt: "2024-01-08T00:00:00Z",
		},
		{
			ID:        "10",
			Username:  "all_might",
			Email:     "allmight@example.com",
			Avatar:    "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400&h=400&fit=crop&crop=face",
			Role:      "user",
			IsActive:  true,
			CreatedAt: "2024-01-09T00:00:00Z",
			UpdatedAt: "2024-01-09T00:00:00Z",
		},
	}
}
