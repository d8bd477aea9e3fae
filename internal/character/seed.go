package character

// Seed 返回角色目录的种子数据。
// 进程重启后所有修改丢失，存储回到这份数据。
func Seed() []Character {
	return []Character{
		{
			ID:           "1",
			Name:         "Goku",
			Anime:        "Dragon Ball",
			Power:        95,
			Intelligence: 75,
			Speed:        90,
			Strength:     95,
			Image:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=400&fit=crop&crop=face",
			Description:  "The main protagonist of Dragon Ball, a Saiyan warrior with incredible strength and a pure heart. Known for his signature Kamehameha attack and never-ending quest to become stronger.",
			Abilities:    []string{"Kamehameha", "Instant Transmission", "Super Saiyan", "Flying", "Energy Sensing"},
			Personality:  "Kind-hearted, determined, loves food, always seeking to improve",
			Birthday:     "April 16",
			Height:       "175 cm",
			Weight:       "62 kg",
			HairColor:    "Black (Golden when Super Saiyan)",
			EyeColor:     "Black",
			CreatedAt:    "2024-01-01T00:00:00Z",
			UpdatedAt:    "2024-01-01T00:00:00Z",
		},
		{
			ID:           "2",
			Name:         "Naruto Uzumaki",
			Anime:        "Naruto",
			Power:        88,
			Intelligence: 70,
			Speed:        85,
			Strength:     80,
			Image:        "https://images.unsplash.com/photo-1541963463532-d68292c34b19?w=400&h=400&fit=crop&crop=face",
			Description:  "The main character of Naruto, a ninja with the Nine-Tails fox sealed inside him. Dreams of becoming Hokage and brings peace to the ninja world.",
			Abilities:    []string{"Rasengan", "Shadow Clone Jutsu", "Sage Mode", "Nine-Tails Chakra", "Wind Release"},
			Personality:  "Determined, loud, never gives up, values friendship above all",
			Birthday:     "October 10",
			Height:       "180 cm",
			Weight:       "75 kg",
			HairColor:    "Blonde",
			EyeColor:     "Blue",
			CreatedAt:    "2024-01-01T00:00:00Z",
			UpdatedAt:    "2024-01-01T00:00:00Z",
		},
		{
			ID:           "3",
			Name:         "Ichigo Kurosaki",
			Anime:        "Bleach",
			Power:        92,
			Intelligence: 78,
			Speed:        88,
			Strength:     85,
			Image:        "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face",
			Description:  "A Soul Reaper with the power to see ghosts. Protects humans from evil spirits and Hollows while searching for his own identity.",
			Abilities:    []string{"Getsuga Tensho", "Bankai", "Hollow Mask", "Spiritual Pressure", "Sword Fighting"},
			Personality:  "Protective, straightforward, values family, determined",
			Birthday:     "July 15",
			Height:       "181 cm",
			Weight:       "66 kg",
			HairColor:    "Orange",
			EyeColor:     "Brown",
			CreatedAt:    "2024-01-01T00:00:00Z",
			UpdatedAt:    "2024-01-01T00:00:00Z",
		},
		{
			ID:           "4",
			Name:         "Luffy",
			Anime:        "One Piece",
			Power:        90,
			Intelligence: 65,
			Speed:        85,
			Strength:     88,
			Image:        "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400&h=400&fit=crop&crop=face",
			Description:  "Captain of the Straw Hat Pirates, a rubber man with the power of the Gum-Gum Fruit. Dreams of becoming the Pirate King.",
			Abilities:    []string{"Gum-Gum Devil Fruit", "Haki", "Gear Transformations", "Rubber Body", "Leadership"},
			Personality:  "Free-spirited, loyal, loves meat, never gives up on friends",
			Birthday:     "May 5",
			Height:       "174 cm",
			Weight:       "70 kg",
			HairColor:    "Black",
			EyeColor:     "Brown",
			CreatedAt:    "2024-01-01T00:00:00Z",
			UpdatedAt:    "2024-01-01T00:00:00Z",
		},
		{
			ID:           "5",
			Name:         "Saitama",
			Anime:        "One Punch Man",
			Power:        100,
			Intelligence: 60,
			Speed:        95,
			Strength:     100,
			Image:        "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400&h=400&fit=crop&crop=face",
			Description:  "The strongest hero who can defeat any enemy with a single punch. Despite his overwhelming power, he struggles with boredom and recognition.",
			Abilities:    []string{"One Punch", "Superhuman Strength", "Superhuman Speed", "Invincibility", "Serious Punch"},
			Personality:  "Bored, simple, honest, seeks challenge, values sales",
			Birthday:     "Unknown",
			Height:       "175 cm",
			Weight:       "70 kg",
			HairColor:    "Bald",
			EyeColor:     "Black",
			CreatedAt:    "2024-01-01T00:00:00Z",
			UpdatedAt:    "2024-01-01T00:00:00Z",
		},
		{
			ID:           "6",
			Name:         "Eren Yeager",
			Anime:        "Attack on Titan",
			Power:        85,
			Intelligence: 80,
			Speed:        75,
			Strength:     80,
			Image:        "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=400&h=400&fit=crop&crop=face",
			Description:  "A soldier fighting against the Titans who threaten humanity. Possesses the power of the Attack Titan and seeks revenge and freedom.",
			Abilities:    []string{"Titan Shifting", "Attack Titan", "Founding Titan", "Military Training", "Strategic Thinking"},
			Personality:  "Determined, vengeful, complex, seeks freedom, protective",
			Birthday:     "March 30",
			Height:       "183 cm",
			Weight:       "75 kg",
			HairColor:    "Brown",
			EyeColor:     "Green",
			CreatedAt:    "2024-01-01T00:00:00Z",
			UpdatedAt:    "2024-01-01T00:00:00Z",
		},
		{
			ID:           "7",
			Name:         "Tanjiro Kamado",
			Anime:        "Demon Slayer",
			Power:        82,
			Intelligence: 85,
			Speed:        80,
			Strength:     75,
			Image:        "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face",
			Description:  "A demon slayer fighting to turn his sister back into a human. Known for his kind heart and determination to protect others.",
			Abilities:    []string{"Water Breathing", "Sun Breathing", "Demon Slayer Mark", "Enhanced Senses", "Sword Fighting"},
			Personality:  "Kind, determined, protective, empathetic, hardworking",
			Birthday:     "July 14",
			Height:       "165 cm",
			Weight:       "61 kg",
			HairColor:    "Black with Red",
			EyeColor:     "Dark Red",
			CreatedAt:    "2024-01-01T00:00:00Z",
			UpdatedAt:    "2024-01-01T00:00:00Z",
		},
		{
			ID:           "8",
			Name:         "All Might",
			Anime:        "My Hero Academia",
			Power:        95,
			Intelligence: 85,
			Speed:        90,
			Strength:     95,
			Image:        "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400&h=400&fit=crop&crop=face",
			Description:  "The former number one hero and symbol of peace. Passed his quirk to Izuku Midoriya and continues to inspire the next generation.",
			Abilities:    []string{"One For All", "Superhuman Strength", "Superhuman Speed", "United States of Smash", "Heroic Presence"},
			Personality:  "Heroic, inspiring, caring, determined, self-sacrificing",
			Birthday:     "June 10",
			Height:       "220 cm",
			Weight:       "120 kg",
			HairColor:    "Blonde",
			EyeColor:     "Blue",
			CreatedAt:    "2024-01-01T00:00:00Z",
			UpdatedAt:    "2024-01-01T00:00:00Z",
		},
		{
			ID:           "9",
			Name:         "Mikasa Ackerman",
			Anime:        "Attack on Titan",
			Power:        88,
			Intelligence: 85,
			Speed:        90,
			Strength:     80,
			Image:        "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=400&h=400&fit=crop&crop=face",
			Description:  "A prodigy soldier and adoptive sister of Eren Yeager. Known for her exceptional combat skills and unwavering loyalty.",
			Abilities:    []string{"Ackerman Bloodline", "Vertical Maneuvering Equipment", "Sword Fighting", "Enhanced Strength", "Combat Strategy"},
			Personality:  "Loyal, protective, skilled, quiet, determined",
			Birthday:     "February 10",
			Height:       "176 cm",
			Weight:       "68 kg",
			HairColor:    "Black",
			EyeColor:     "Gray",
			CreatedAt:    "2024-01-01T00:00:00Z",
			UpdatedAt:    "2024-01-01T00:00:00Z",
		},
		{
			ID:           "10",
			Name:         "Zoro",
			Anime:        "One Piece",
			Power:        88,
			Intelligence: 75,
			Speed:        85,
			Strength:     90,
			Image:        "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face",
			Description:  "The swordsman of the Straw Hat Pirates and Luffy's first mate. Dreams of becoming the world's greatest swordsman.",
			Abilities:    []string{"Three Sword Style", "Haki", "Sword Fighting", "Superhuman Strength", "Directional Impaired"},
			Personality:  "Serious, loyal, determined, gets lost easily, honorable",
			Birthday:     "November 11",
			Height:       "181 cm",
			Weight:       "78 kg",
			HairColor:    "Green",
			EyeColor:     "Black",
			CreatedAt:    "2024-01-01T00:00:00Z",
			UpdatedAt:    "2024-01-01T00:00:00Z",
		},
		{
			ID:           "11",
			Name:         "Vegeta",
			Anime:        "Dragon Ball",
			Power:        92,
			Intelligence: 85,
			Speed:        88,
			Strength:     90,
			Image:        "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face",
			Description:  "The Prince of Saiyans and Goku's rival turned ally. Proud and arrogant but deeply cares for his family.",
			Abilities:    []string{"Galick Gun", "Final Flash", "Super Saiyan", "Royal Bloodline", "Combat Strategy"},
			Personality:  "Proud, arrogant, protective, determined, honorable",
			Birthday:     "Unknown",
			Height:       "164 cm",
			Weight:       "56 kg",
			HairColor:    "Black (Golden when Super Saiyan)",
			EyeColor:     "Black",
			CreatedAt:    "2024-01-01T00:00:00Z",
			UpdatedAt:    "2024-01-01T00:00:00Z",
		},
		{
			ID:           "12",
			Name:         "Sasuke Uchiha",
			Anime:        "Naruto",
			Power:        90,
			Intelligence: 88,
			Speed:        90,
			Strength:     82,
			Image:        "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face",
			Description:  "Naruto's rival and friend, a prodigy ninja from the Uchiha clan. Seeks revenge and power to protect what he loves.",
			Abilities:    []string{"Sharingan", "Rinnegan", "Chidori", "Susanoo", "Lightning Release"},
			Personality:  "Brooding, determined, complex, protective, skilled",
			Birthday:     "July 23",
			Height:       "182 cm",
			Weight:       "70 kg",
			HairColor:    "Black",
			EyeColor:     "Black (Red with Sharingan)",
			CreatedAt:    "2024-01-01T00:00:00Z",
			UpdatedAt:    "2024-01-01T00:00:00Z",
		},
		{
			ID:           "13",
			Name:         "Levi Ackerman",
			Anime:        "Attack on Titan",
			Power:        95,
			Intelligence: 90,
			Speed:        95,
			Strength:     85,
			Image:        "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face",
			Description:  "Humanity's strongest soldier and captain of the Survey Corps. Known for his exceptional combat skills and cleanliness obsession.",
			Abilities:    []string{"Ackerman Bloodline", "Vertical Maneuvering Equipment", "Sword Fighting", "Enhanced Reflexes", "Combat Strategy"},
			Personality:  "Serious, clean freak, skilled, protective, direct",
			Birthday:     "December 25",
			Height:       "160 cm",
			Weight:       "65 kg",
			HairColor:    "Black",
			EyeColor:     "Gray",
			CreatedAt:    "2024-01-01T00:00:00Z",
			UpdatedAt:    "2024-01-01T00:00:00Z",
		},
		{
			ID:           "14",
			Name:         "Kakashi Hatake",
			Anime:        "Naruto",
			Power:        88,
			Intelligence: 95,
			Speed:        85,
			Strength:     80,
			Image:        "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face",
			Description:  "The Copy Ninja and former teacher of Team 7. Known for his Sharingan eye and vast knowledge of jutsu.",
			Abilities:    []string{"Sharingan", "Chidori", "Copy Ninja", "Lightning Release", "Strategic Thinking"},
			Personality:  "Calm, intelligent, caring, mysterious, skilled",
			Birthday:     "September 15",
			Height:       "181 cm",
			Weight:       "67 kg",
			HairColor:    "Silver",
			EyeColor:     "Black (Red with Sharingan)",
			CreatedAt:    "2024-01-01T00:00:00Z",
			UpdatedAt:    "2024-01-01T00:00:00Z",
		},
		{
			ID:           "15",
			Name:         "Sanji",
			Anime:        "One Piece",
			Power:        85,
			Intelligence: 80,
			Speed:        90,
			Strength:     75,
			Image:        "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face",
			Description:  "The cook of the Straw Hat Pirates and a master of Black Leg Style. Refuses to fight women and is a hopeless romantic.",
			Abilities:    []string{"Black Leg Style", "Diable Jambe", "Sky Walk", "Cooking Skills", "Observation Haki"},
			Personality:  "Chivalrous, romantic, skilled cook, protective, honorable",
			Birthday:     "March 2",
			Height:       "180 cm",
			Weight:       "68 kg",
			HairColor:    "Blonde",
			EyeColor:     "Blue",
			CreatedAt:    "2024-01-01T00:00:00Z",
			UpdatedAt:    "2024-01-01T00:00:00Z",
		},
	}
}
