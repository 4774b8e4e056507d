// Package eld turns a driver's activity timeline into ELD daily log sheets.
package eld

import (
	"time"

	"spotterapi/internal/model"
)

const dateLayout = "2006-01-02"

// DailyLogs splits the timeline at local midnight in the zone of its first activity.
// Each log covers a full 24-hour day; hours outside the timeline are logged off duty.
func DailyLogs(timeline []model.Activity) []model.DailyLog {
	if len(timeline) == 0 {
		return []model.DailyLog{}
	}

	loc := timeline[0].Start.Location()
	first := midnight(timeline[0].Start.In(loc))
	last := timeline[len(timeline)-1].End.In(loc)

	var logs []model.DailyLog
	for day := first; day.Before(last); day = day.AddDate(0, 0, 1) {
		logs = append(logs, buildDay(day, day.AddDate(0, 0, 1), timeline))
	}
	return logs
}

func buildDay(dayStart, dayEnd time.Time, timeline []model.Activity) model.DailyLog {
	log := model.DailyLog{
		Date:    dayStart.Format(dateLayout),
		Entries: []model.ELDEntry{},
	}

	cursor := dayStart
	for _, a := range timeline {
		start, end := clip(a.Start, a.End, dayStart, dayEnd)
		if !end.After(start) {
			continue
		}
		if start.After(cursor) {
			log.AddEntry(offDuty(cursor, start))
		}

		miles := a.Miles
		if total := a.End.Sub(a.Start); total > 0 && end.Sub(start) < total {
			miles = a.Miles * float64(end.Sub(start)) / float64(total)
		}
		log.AddEntry(model.ELDEntry{
			Status:    a.Status,
			StartTime: start,
			EndTime:   end,
			Location:  a.Location,
			Duration:  end.Sub(start).Hours(),
			Miles:     miles,
		})
		cursor = end
	}
	if dayEnd.After(cursor) {
		log.AddEntry(offDuty(cursor, dayEnd))
	}
	return log
}

func offDuty(start, end time.Time) model.ELDEntry {
	return model.ELDEntry{
		Status:    model.StatusOffDuty,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start).Hours(),
	}
}

// clip limits [start, end) to [lo, hi), all in lo's zone.
func clip(start, end, lo, hi time.Time) (time.Time, time.Time) {
	start, end = start.In(lo.Location()), end.In(lo.Location())
	if start.Before(lo) {
		start = lo
	}
	if end.After(hi) {
		end = hi
	}
	return start, end
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
