package comment

// Seed 返回评论的种子数据。
func Seed() []Comment {
	return []Comment{
		{
			ID:          "1",
			CharacterID: "1",
			UserID:      "3",
			Content:     "Goku is absolutely amazing! His determination and pure heart make him the perfect protagonist. Love his Kamehameha attack!",
			Rating:      rating(5),
			CreatedAt:   "2024-01-15T10:30:00Z",
			UpdatedAt:   "2024-01-15T10:30:00Z",
		},
		{
			ID:          "2",
			CharacterID: "1",
			UserID:      "4",
			Content:     "The strongest Saiyan warrior! His character development throughout the series is incredible.",
			Rating:      rating(5),
			CreatedAt:   "2024-01-16T14:20:00Z",
			UpdatedAt:   "2024-01-16T14:20:00Z",
		},
		{
			ID:          "3",
			CharacterID: "2",
			UserID:      "5",
			Content:     "Believe it! Naruto's journey from being an outcast to becoming Hokage is truly inspiring.",
			Rating:      rating(5),
			CreatedAt:   "2024-01-17T09:15:00Z",
			UpdatedAt:   "2024-01-17T09:15:00Z",
		},
		{
			ID:          "4",
			CharacterID: "2",
			UserID:      "3",
			Content:     "His never-give-up attitude and the way he values friendship above everything else is what makes him special.",
			Rating:      rating(4),
			CreatedAt:   "2024-01-18T16:45:00Z",
			UpdatedAt:   "2024-01-18T16:45:00Z",
		},
		{
			ID:          "5",
			CharacterID: "3",
			UserID:      "6",
			Content:     "Ichigo's character is so complex and well-developed. His struggle with identity and protecting others is compelling.",
			Rating:      rating(4),
			CreatedAt:   "2024-01-19T11:30:00Z",
			UpdatedAt:   "2024-01-19T11:30:00Z",
		},
		{
			ID:          "6",
			CharacterID: "4",
			UserID:      "6",
			Content:     "Luffy's dream of becoming Pirate King and his unwavering loyalty to his crew is what makes him a great captain!",
			Rating:      rating(5),
			CreatedAt:   "2024-01-20T13:20:00Z",
			UpdatedAt:   "2024-01-20T13:20:00Z",
		},
		{
			ID:          "7",
			CharacterID: "5",
			UserID:      "7",
			Content:     "Saitama is hilariously overpowered! The contrast between his strength and his mundane problems is perfect comedy.",
			Rating:      rating(5),
			CreatedAt:   "2024-01-21T08:10:00Z",
			UpdatedAt:   "2024-01-21T08:10:00Z",
		},
		{
			ID:          "8",
			CharacterID: "6",
			UserID:      "8",
			Content:     "Eren's character arc is one of the most complex and controversial in anime. His transformation is both tragic and fascinating.",
			Rating:      rating(4),
			CreatedAt:   "2024-01-22T15:30:00Z",
			UpdatedAt:   "2024-01-22T15:30:00Z",
		},
		{
			ID:          "9",
			CharacterID: "7",
			UserID:      "9",
			Content:     "Tanjiro's kindness and determination to save his sister while maintaining his humanity is truly touching.",
			Rating:      rating(5),
			CreatedAt:   "2024-01-23T12:45:00Z",
			UpdatedAt:   "2024-01-23T12:45:00Z",
		},
		{
			ID:          "10",
			CharacterID: "8",
			UserID:      "10",
			Content:     "All Might is the perfect symbol of peace! His sacrifice and dedication to protecting others is heroic.",
			Rating:      rating(5),
			CreatedAt:   "2024-01-24T10:20:00Z",
			UpdatedAt:   "2024-01-24T10:20:00Z",
		},
		{
			ID:          "11",
			CharacterID: "9",
			UserID:      "3",
			Content:     "Mikasa's loyalty and combat skills are unmatched. Her devotion to Eren is both beautiful and tragic.",
			Rating:      rating(4),
			CreatedAt:   "2024-01-25T14:15:00Z",
			UpdatedAt:   "2024-01-25T14:15:00Z",
		},
		{
			ID:          "12",
			CharacterID: "10",
			UserID:      "6",
			Content:     "Zoro's dedication to becoming the world's greatest swordsman and his loyalty to Luffy is admirable.",
			Rating:      rating(4),
			CreatedAt:   "2024-01-26T09:30:00Z",
			UpdatedAt:   "2024-01-26T09:30:00Z",
		},
		{
			ID:          "13",
			CharacterID: "11",
			UserID:      "4",
			Content:     "Vegeta's character development from villain to hero is one of the best in anime. His pride and growth are amazing.",
			Rating:      rating(5),
			CreatedAt:   "2024-01-27T16:40:00Z",
			UpdatedAt:   "2024-01-27T16:40:00Z",
		},
		{
			ID:          "14",
			CharacterID: "12",
			UserID:      "5",
			Content:     "Sasuke's complex journey and his relationship with Naruto is one of the most compelling aspects of the series.",
			Rating:      rating(4),
			CreatedAt:   "2024-01-28T11:25:00Z",
			UpdatedAt:   "2024-01-28T11:25:00Z",
		},
		{
			ID:          "15",
			CharacterID: "13",
			UserID:      "8",
			Content:     "Levi is humanity's strongest soldier for a reason. His combat skills and leadership are exceptional.",
			Rating:      rating(5),
			CreatedAt:   "2024-01-29T13:50:00Z",
			UpdatedAt:   "2024-01-29T13:50:00Z",
		},
	}
}

func rating(v int) *int {
	return &v
}
