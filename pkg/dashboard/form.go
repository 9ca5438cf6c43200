package dashboard

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/marcus/rd/internal/models"
)

// LogFormState holds the state for the log-activity form modal
type LogFormState struct {
	Form *huh.Form

	// Bound form values
	UserID int
	Option string // activity description, one of models.ActivityOptions
	Post   bool   // true = create on the backend, false = local-only entry
}

// NewLogFormState creates the form for logging an activity. users feeds the
// member select; the first user and first activity option are preselected.
func NewLogFormState(users []models.User, dark bool) *LogFormState {
	fs := &LogFormState{
		Option: models.ActivityOptions[0].Description,
	}
	if len(users) > 0 {
		fs.UserID = users[0].ID
	}

	userOptions := make([]huh.Option[int], 0, len(users))
	for _, u := range users {
		userOptions = append(userOptions, huh.NewOption(fmt.Sprintf("%s (%d pts)", u.Name, u.Points), u.ID))
	}

	activityOptions := make([]huh.Option[string], 0, len(models.ActivityOptions))
	for _, opt := range models.ActivityOptions {
		activityOptions = append(activityOptions,
			huh.NewOption(fmt.Sprintf("%s (+%d)", opt.Description, opt.Points), opt.Description))
	}

	group := huh.NewGroup(
		huh.NewSelect[int]().
			Title("Member").
			Options(userOptions...).
			Value(&fs.UserID),
		huh.NewSelect[string]().
			Title("Activity").
			Options(activityOptions...).
			Value(&fs.Option),
		huh.NewConfirm().
			Title("Post to server").
			Description("No keeps the entry in this session only").
			Value(&fs.Post),
	).Title("Log Activity")

	fs.Form = huh.NewForm(group)
	if dark {
		fs.Form.WithTheme(huh.ThemeDracula())
	} else {
		fs.Form.WithTheme(huh.ThemeBase16())
	}
	return fs
}

// ToActivity converts the form values to an activity. Local entries get a
// client-generated id; posted entries have it replaced by the server.
func (fs *LogFormState) ToActivity(now time.Time) models.Activity {
	points := 0
	for _, opt := range models.ActivityOptions {
		if opt.Description == fs.Option {
			points = opt.Points
			break
		}
	}
	return models.Activity{
		ID:          int(now.UnixMilli()),
		UserID:      fs.UserID,
		Description: fs.Option,
		Points:      points,
		Timestamp:   now,
	}
}
