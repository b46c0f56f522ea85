package model

import "time"

// SampleTrip is the bootstrap dataset shown to first-time users: three days
// starting at now, three activities each.
func SampleTrip(now time.Time) TripState {
	day := func(n int) time.Time { return now.AddDate(0, 0, n) }
	return TripState{
		TripName: DefaultTripName,
		Days: []Day{
			{
				ID:   "day-1",
				Date: day(0),
				Activities: []Activity{
					{
						ID:        "activity-1",
						Title:     "Morning Coffee at Artisan Cafe",
						Location:  "Downtown District",
						Time:      "9:00 AM",
						Notes:     "Try their famous croissants",
						Emoji:     "☕",
						TimeOfDay: TimeOfDayMorning,
						ImageURL:  "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?auto=format&fit=crop&w=800",
					},
					{
						ID:        "activity-2",
						Title:     "City Museum Tour",
						Location:  "Cultural Quarter",
						Time:      "2:00 PM",
						Notes:     "Special exhibition on modern art",
						Emoji:     "🏛️",
						TimeOfDay: TimeOfDayAfternoon,
						ImageURL:  "https://images.unsplash.com/photo-1554907984-15263bfd63bd?auto=format&fit=crop&w=800",
					},
					{
						ID:        "activity-3",
						Title:     "Sunset Dinner Cruise",
						Location:  "Harbor District",
						Time:      "7:00 PM",
						Notes:     `Reservation under "Smith"`,
						Emoji:     "🚢",
						TimeOfDay: TimeOfDayEvening,
						ImageURL:  "https://images.unsplash.com/photo-1514302240736-b1fee5985889?auto=format&fit=crop&w=800",
					},
				},
			},
			{
				ID:   "day-2",
				Date: day(1),
				Activities: []Activity{
					{
						ID:        "activity-4",
						Title:     "Hiking Adventure",
						Location:  "Mountain Trail Park",
						Time:      "8:00 AM",
						Notes:     "Bring water and snacks",
						Emoji:     "🏔️",
						TimeOfDay: TimeOfDayMorning,
						ImageURL:  "https://images.unsplash.com/photo-1551632811-561732d1e306?auto=format&fit=crop&w=800",
					},
					{
						ID:        "activity-5",
						Title:     "Local Market Visit",
						Location:  "Old Town Square",
						Time:      "2:30 PM",
						Notes:     "Famous for local crafts",
						Emoji:     "🛍️",
						TimeOfDay: TimeOfDayAfternoon,
						ImageURL:  "https://images.unsplash.com/photo-1533900298318-6b8da08a523e?auto=format&fit=crop&w=800",
					},
					{
						ID:        "activity-6",
						Title:     "Jazz Club Evening",
						Location:  "Blue Note Club",
						Time:      "8:00 PM",
						Notes:     "Live performance night",
						Emoji:     "🎷",
						TimeOfDay: TimeOfDayEvening,
						ImageURL:  "https://images.unsplash.com/photo-1511192336575-5a79af67a629?auto=format&fit=crop&w=800",
					},
				},
			},
			{
				ID:   "day-3",
				Date: day(2),
				Activities: []Activity{
					{
						ID:        "activity-7",
						Title:     "Beach Yoga Session",
						Location:  "Sunrise Beach",
						Time:      "7:30 AM",
						Notes:     "Bring yoga mat",
						Emoji:     "🧘‍♀️",
						TimeOfDay: TimeOfDayMorning,
						ImageURL:  "https://images.unsplash.com/photo-1506126613408-eca07ce68773?auto=format&fit=crop&w=800",
					},
					{
						ID:        "activity-8",
						Title:     "Botanical Gardens",
						Location:  "City Gardens",
						Time:      "1:00 PM",
						Notes:     "Butterfly house tour included",
						Emoji:     "🦋",
						TimeOfDay: TimeOfDayAfternoon,
						ImageURL:  "https://images.unsplash.com/photo-1585320806297-9794b3e4eeae?auto=format&fit=crop&w=800",
					},
					{
						ID:        "activity-9",
						Title:     "Rooftop Dinner",
						Location:  "Sky Lounge Restaurant",
						Time:      "7:30 PM",
						Notes:     "Dress code: Smart casual",
						Emoji:     "🍽️",
						TimeOfDay: TimeOfDayEvening,
						ImageURL:  "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?auto=format&fit=crop&w=800",
					},
				},
			},
		},
	}
}
