// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

package i18n

// translations holds the static string tables keyed by language code and
// translation key. The en and sw key sets are kept symmetric; the resolver
// tolerates orphans but the test suite rejects them.
var translations = map[Language]map[string]string{
	English: {
		// Navbar
		"bookingSystem": "Booking System",
		"logout":        "Logout",

		// Dashboard
		"availableRooms":       "Available Rooms",
		"reservedRooms":        "Reserved Rooms",
		"bookedRooms":          "Booked Rooms",
		"forDate":              "For Date:",
		"searchPlaceholder":    "Search by room name, amenities, capacity...",
		"checkingAvailability": "Checking availability...",
		"noRoomsFound":         "No rooms found in this category.",
		"tryAgain":             "Try Again",
		"capacity":             "Capacity",
		"people":               "people",
		"amenities":            "Amenities",
		"bookRoom":             "Book Room",
		"reserveForLater":      "Reserve for Later",
		"available":            "Available",
		"reserved":             "Reserved",
		"booked":               "Booked",

		// Sidebar
		"home":           "Home",
		"myBookings":     "My Bookings",
		"myReservations": "My Reservations",

		// Login
		"welcomeBack":     "Welcome Back",
		"signInToAccount": "Sign in to your account to book rooms",
		"email":           "Email",
		"password":        "Password",
		"signIn":          "Sign In",
		"signingIn":       "Signing in...",
		"dontHaveAccount": "Don't have an account?",
		"signUp":          "Sign up",

		// Booking Modal
		"selectDateTime":     "Select a date, time, and duration for your",
		"booking":            "booking",
		"reservation":        "reservation",
		"book":               "Book",
		"reserve":            "Reserve",
		"date":               "Date",
		"startTime":          "Start Time",
		"endTime":            "End Time",
		"duration":           "Duration",
		"selectStartTime":    "Select start time",
		"selectEndTime":      "Select end time",
		"selectDuration":     "Select duration",
		"cancel":             "Cancel",
		"confirmBooking":     "Confirm Booking",
		"confirmReservation": "Confirm Reservation",
		"confirmed":          "Confirmed!",
		"submitting":         "Submitting...",
		"bookingConfirmed":   "Booking confirmed! Check your email for details.",

		// Footer
		"allRightsReserved": "All rights reserved.",

		// Language
		"language": "Language",
		"english":  "English",
		"swahili":  "Swahili",

		// Theme
		"darkMode":  "Dark Mode",
		"lightMode": "Light Mode",
	},
	Swahili: {
		// Navbar
		"bookingSystem": "Mfumo wa Kuhifadhi",
		"logout":        "Ondoka",

		// Dashboard
		"availableRooms":       "Vyumba Vinavyopatikana",
		"reservedRooms":        "Vyumba Vilivyohifadhiwa",
		"bookedRooms":          "Vyumba Vilivyohifadhiwa",
		"forDate":              "Kwa Tarehe:",
		"searchPlaceholder":    "Tafuta kwa jina la chumba, vifaa, uwezo...",
		"checkingAvailability": "Kuangalia upatikanaji...",
		"noRoomsFound":         "Hakuna vyumba vilivyopatikana katika kategoria hii.",
		"tryAgain":             "Jaribu Tena",
		"capacity":             "Uwezo",
		"people":               "watu",
		"amenities":            "Vifaa",
		"bookRoom":             "Hifadhi Chumba",
		"reserveForLater":      "Weka Akiba kwa Baadaye",
		"available":            "Inapatikana",
		"reserved":             "Imehifadhiwa",
		"booked":               "Imechukiliwa",

		// Sidebar
		"home":           "Nyumbani",
		"myBookings":     "Uhifadhi Wangu",
		"myReservations": "Akiba Zangu",

		// Login
		"welcomeBack":     "Karibu Tena",
		"signInToAccount": "Ingia kwenye akaunti yako kuhifadhi vyumba",
		"email":           "Barua pepe",
		"password":        "Nenosiri",
		"signIn":          "Ingia",
		"signingIn":       "Inaingia...",
		"dontHaveAccount": "Huna akaunti?",
		"signUp":          "Jisajili",

		// Booking Modal
		"selectDateTime":     "Chagua tarehe, wakati, na muda wa yako",
		"booking":            "uhifadhi",
		"reservation":        "akiba",
		"book":               "Hifadhi",
		"reserve":            "Weka Akiba",
		"date":               "Tarehe",
		"startTime":          "Wakati wa Kuanza",
		"endTime":            "Wakati wa Kumaliza",
		"duration":           "Muda",
		"selectStartTime":    "Chagua wakati wa kuanza",
		"selectEndTime":      "Chagua wakati wa kumaliza",
		"selectDuration":     "Chagua muda",
		"cancel":             "Ghairi",
		"confirmBooking":     "Thibitisha Uhifadhi",
		"confirmReservation": "Thibitisha Akiba",
		"confirmed":          "Imethibitishwa!",
		"submitting":         "Inatuma...",
		"bookingConfirmed":   "Uhifadhi umethibitishwa! Angalia barua pepe yako kwa maelezo.",

		// Footer
		"allRightsReserved": "Haki zote zimehifadhiwa.",

		// Language
		"language": "Lugha",
		"english":  "Kiingereza",
		"swahili":  "Kiswahili",

		// Theme
		"darkMode":  "Hali ya Giza",
		"lightMode": "Hali ya Mwanga",
	},
}
