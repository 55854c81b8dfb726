package dto

// SectionUpdatedPayload travels over the watermill topic that feeds
// the re-embed consumer.
type SectionUpdatedPayload struct {
	BrdId      string `json:"brd_id"`
	SectionKey string `json:"section_key"`
}
