package catalog

// Event is one fest activity. The catalog is fixed at build time; events
// are never created or edited at runtime.
type Event struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Category         string   `json:"category"`
	Description      string   `json:"description"`
	Date             string   `json:"date"`
	Time             string   `json:"time"`
	Venue            string   `json:"venue"`
	TeamSize         string   `json:"team_size"`
	RegistrationFee  string   `json:"registration_fee"`
	CoordinatorName  string   `json:"coordinator_name"`
	CoordinatorPhone string   `json:"coordinator_phone"`
	Rules            []string `json:"rules"`
}

const (
	CategoryIT         = "it"
	CategoryManagement = "management"
	CategoryCultural   = "cultural"
	CategorySports     = "sports"
)

var events = []Event{
	{
		ID:               "code-sprint",
		Title:            "Code Sprint",
		Category:         CategoryIT,
		Description:      "Competitive programming contest. Three rounds of increasing difficulty, judged on correctness and time.",
		Date:             "2026-02-20",
		Time:             "10:00 AM",
		Venue:            "CS Lab 1",
		TeamSize:         "2",
		RegistrationFee:  "₹200 per team",
		CoordinatorName:  "Ananya Rao",
		CoordinatorPhone: "9845012345",
		Rules: []string{
			"Teams of 2. Both members must be from the same college.",
			"Any language allowed; internet access is restricted to documentation.",
			"Judges' decision is final.",
		},
	},
	{
		ID:               "web-wizards",
		Title:            "Web Wizards",
		Category:         CategoryIT,
		Description:      "Build and deploy a working web app around a surprise theme in six hours.",
		Date:             "2026-02-20",
		Time:             "11:00 AM",
		Venue:            "CS Lab 2",
		TeamSize:         "4",
		RegistrationFee:  "₹400 per team",
		CoordinatorName:  "Rahul Menon",
		CoordinatorPhone: "9846023456",
		Rules: []string{
			"Teams of 4. Bring your own laptops.",
			"Theme revealed at the venue; prebuilt templates are disqualified.",
		},
	},
	{
		ID:               "quiz-quest",
		Title:            "Quiz Quest",
		Category:         CategoryIT,
		Description:      "Tech quiz covering programming, hardware, internet history and general computing trivia.",
		Date:             "2026-02-21",
		Time:             "09:30 AM",
		Venue:            "Seminar Hall",
		TeamSize:         "2",
		RegistrationFee:  "₹150 per team",
		CoordinatorName:  "Divya Shetty",
		CoordinatorPhone: "9847034567",
		Rules: []string{
			"Teams of 2. Written prelims followed by a stage final.",
			"No electronic devices during rounds.",
		},
	},
	{
		ID:               "best-manager",
		Title:            "Best Manager",
		Category:         CategoryManagement,
		Description:      "Individual event testing decision making, negotiation and crisis handling across surprise rounds.",
		Date:             "2026-02-20",
		Time:             "10:30 AM",
		Venue:            "MBA Block Room 12",
		TeamSize:         "Solo",
		RegistrationFee:  "₹100",
		CoordinatorName:  "Kiran Nair",
		CoordinatorPhone: "9848045678",
		Rules: []string{
			"Individual participation only.",
			"Formal dress code is mandatory.",
		},
	},
	{
		ID:               "marketing-mania",
		Title:            "Marketing Mania",
		Category:         CategoryManagement,
		Description:      "Pitch, brand and sell a product concept to a jury of faculty and industry guests.",
		Date:             "2026-02-21",
		Time:             "11:00 AM",
		Venue:            "MBA Block Room 8",
		TeamSize:         "2",
		RegistrationFee:  "₹200 per team",
		CoordinatorName:  "Sneha Kulkarni",
		CoordinatorPhone: "9849056789",
		Rules: []string{
			"Teams of 2. Product is assigned by lot.",
			"Ten minutes to pitch, five minutes for jury questions.",
		},
	},
	{
		ID:               "group-dance",
		Title:            "Group Dance",
		Category:         CategoryCultural,
		Description:      "Theme-free group dance. Props allowed, pyrotechnics are not.",
		Date:             "2026-02-21",
		Time:             "04:00 PM",
		Venue:            "Main Stage",
		TeamSize:         "8 + 2",
		RegistrationFee:  "₹800 per team",
		CoordinatorName:  "Aishwarya Pai",
		CoordinatorPhone: "9850067890",
		Rules: []string{
			"8 performers plus up to 2 substitutes per team.",
			"Performance time 6 to 8 minutes including setup.",
			"Tracks must be submitted a day in advance.",
		},
	},
	{
		ID:               "solo-singing",
		Title:            "Solo Singing",
		Category:         CategoryCultural,
		Description:      "Individual vocals, any language. One accompanist or a backing track is allowed.",
		Date:             "2026-02-20",
		Time:             "02:00 PM",
		Venue:            "Auditorium",
		TeamSize:         "Individual",
		RegistrationFee:  "₹100",
		CoordinatorName:  "Vivek Hegde",
		CoordinatorPhone: "9851078901",
		Rules: []string{
			"Maximum 4 minutes on stage.",
			"Karaoke tracks must be submitted at registration desk.",
		},
	},
	{
		ID:               "cricket",
		Title:            "Box Cricket",
		Category:         CategorySports,
		Description:      "Six-over box cricket tournament on the indoor turf. Knockout format.",
		Date:             "2026-02-22",
		Time:             "08:00 AM",
		Venue:            "Indoor Turf",
		TeamSize:         "8 + 2",
		RegistrationFee:  "₹1000 per team",
		CoordinatorName:  "Arjun Shenoy",
		CoordinatorPhone: "9852089012",
		Rules: []string{
			"8 players plus 2 substitutes per team.",
			"Tennis ball only. Umpire's decision is final.",
			"Teams must report 30 minutes before their slot.",
		},
	},
	{
		ID:               "futsal",
		Title:            "Futsal",
		Category:         CategorySports,
		Description:      "5-a-side football with rolling substitutions. League plus knockout.",
		Date:             "2026-02-22",
		Time:             "09:00 AM",
		Venue:            "Basketball Court",
		TeamSize:         "5 + 2",
		RegistrationFee:  "₹700 per team",
		CoordinatorName:  "Imran Khan",
		CoordinatorPhone: "9853090123",
		Rules: []string{
			"5 players plus 2 substitutes per team.",
			"Two halves of 10 minutes each.",
		},
	},
	{
		ID:               "chess",
		Title:            "Rapid Chess",
		Category:         CategorySports,
		Description:      "Individual rapid chess, 10 minutes per side, Swiss system.",
		Date:             "2026-02-21",
		Time:             "10:00 AM",
		Venue:            "Library Annex",
		TeamSize:         "1",
		RegistrationFee:  "Free",
		CoordinatorName:  "Meera Joshi",
		CoordinatorPhone: "9854001234",
		Rules: []string{
			"FIDE rapid rules apply.",
			"Five rounds; tie-breaks by Buchholz score.",
		},
	},
}

// All returns the full event catalog in display order.
func All() []Event {
	return events
}

// ByID looks up one event. The second return is false for unknown ids.
func ByID(id string) (Event, bool) {
	for _, e := range events {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}

// ByCategory filters the catalog by category key.
func ByCategory(category string) []Event {
	var out []Event
	for _, e := range events {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// RequiredMembers is the member-slot count the registration form must
// collect for the event.
func (e Event) RequiredMembers() int {
	return TeamSize(e.TeamSize)
}

// FeeValue is the numeric amount encoded into the payment link.
func (e Event) FeeValue() string {
	return FeeAmount(e.RegistrationFee)
}
