package services

import "github.com/crusadia/journal/internal/models"

// Slot addresses either a single day inside a week or the week as a whole.
// The two cases are distinct values, so "day 0" can never be confused with
// "no day".
type Slot struct {
	day    int
	hasDay bool
}

func WeekSlot() Slot {
	return Slot{}
}

func DaySlot(day int) Slot {
	return Slot{day: day, hasDay: true}
}

// SlotFromDayIndex maps an optional wire-level day index onto a Slot.
func SlotFromDayIndex(dayIndex *int) Slot {
	if dayIndex == nil {
		return WeekSlot()
	}
	return DaySlot(*dayIndex)
}

func (slot Slot) Day() (int, bool) {
	return slot.day, slot.hasDay
}

func (slot Slot) IsWholeWeek() bool {
	return !slot.hasDay
}

func (slot Slot) valid() bool {
	return !slot.hasDay || (slot.day >= 0 && slot.day <= 6)
}

// storageValue flattens the slot into the day_slot column representation.
func (slot Slot) storageValue() int {
	if !slot.hasDay {
		return models.WholeWeekSlot
	}
	return slot.day
}

// SlotFromStorage restores a Slot from the day_slot column value.
func SlotFromStorage(daySlot int) Slot {
	if daySlot == models.WholeWeekSlot {
		return WeekSlot()
	}
	return DaySlot(daySlot)
}
