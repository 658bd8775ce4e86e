package statsapi

// Response structures matching the MLB StatsAPI JSON format, trimmed to the
// fields the pipeline consumes.

type scheduleResponse struct {
	Dates []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date  string         `json:"date"`
	Games []ScheduleGame `json:"games"`
}

// ScheduleGame is one scheduled game
type ScheduleGame struct {
	GamePK       int    `json:"gamePk"`
	OfficialDate string `json:"officialDate"`
	Status       struct {
		DetailedState string `json:"detailedState"`
	} `json:"status"`
	Teams struct {
		Home ScheduleTeam `json:"home"`
		Away ScheduleTeam `json:"away"`
	} `json:"teams"`
}

// ScheduleTeam is one side of a scheduled game
type ScheduleTeam struct {
	Score int `json:"score"`
	Team  struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"team"`
	IsWinner bool `json:"isWinner"`
}

// Person identifies a player in feed decisions
type Person struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
}

// GameFeed is the live-feed summary for one game
type GameFeed struct {
	GamePK   int `json:"gamePk"`
	GameData struct {
		Status struct {
			DetailedState string `json:"detailedState"`
		} `json:"status"`
		Datetime struct {
			OfficialDate string `json:"officialDate"`
		} `json:"datetime"`
	} `json:"gameData"`
	LiveData struct {
		Decisions struct {
			Winner Person `json:"winner"`
			Loser  Person `json:"loser"`
			Save   Person `json:"save"`
		} `json:"decisions"`
	} `json:"liveData"`
}
