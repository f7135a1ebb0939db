package domain

// XP awarded for participant actions. A level is earned every 100 XP.
const (
	XPCheckIn            = 20
	XPEventCompletion    = 50
	XPFeedbackSubmission = 10
	XPWinningEvent       = 100

	xpPerLevel = 100
)

func CalculateLevel(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return 1 + xp/xpPerLevel
}

// XPResult describes the outcome of a single XP award.
type XPResult struct {
	ParticipantID uint `json:"participant_id"`
	XP            int  `json:"xp"`
	OldLevel      int  `json:"old_level"`
	NewLevel      int  `json:"new_level"`
	LeveledUp     bool `json:"leveled_up"`
}
