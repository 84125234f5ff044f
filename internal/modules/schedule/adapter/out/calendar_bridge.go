package out

import (
	"context"

	calendardto "studykit/internal/modules/calendar/dto"
	calendarin "studykit/internal/modules/calendar/port/in"
	scheduleout "studykit/internal/modules/schedule/port/out"
)

// CalendarBridge adapts the schedule module's sync port onto the calendar
// module, one event per call.
type CalendarBridge struct {
	calendar calendarin.Usecase
}

func NewCalendarBridge(calendar calendarin.Usecase) scheduleout.CalendarSync {
	return &CalendarBridge{calendar: calendar}
}

func (b *CalendarBridge) PushEvent(ctx context.Context, provider string, event scheduleout.CalendarEvent) error {
	_, err := b.calendar.Push(ctx, calendardto.PushInput{
		Provider: provider,
		Event: calendardto.EventInput{
			Title:       event.Title,
			Date:        event.Date,
			Time:        event.Time,
			DurationMin: event.DurationMin,
			Description: event.Description,
		},
	})
	return err
}
