package models

// SectionKind identifies one of the three journal categories.
type SectionKind string

const (
	SectionDailyRent  SectionKind = "daily-rent"
	SectionWeighIn    SectionKind = "weigh-in"
	SectionReflection SectionKind = "reflection"
)

// WholeWeekSlot is the stored day_slot value for entries that cover the whole
// week. SQLite treats NULLs as distinct in unique indexes, so the draft
// identity key uses a sentinel instead of a nullable column.
const WholeWeekSlot = -1
