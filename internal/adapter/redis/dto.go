package redis

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/moreminutes-backend/internal/domain"
)

type cachedAction struct {
	ID                     uuid.UUID  `json:"id"`
	Text                   string     `json:"text"`
	OriginalText           string     `json:"original_text"`
	Minutes                int        `json:"minutes"`
	RepeatableDaily        bool       `json:"repeatable_daily"`
	MustBeLoggedAtEndOfDay bool       `json:"end_of_day"`
	Warning                *string    `json:"warning,omitempty"`
	SimilarTo              []string   `json:"similar_to"`
	Origin                 string     `json:"origin"`
	OwnerUserID            *uuid.UUID `json:"owner,omitempty"`
}

func fromDomain(d domain.ActionDefinition) cachedAction {
	similar := d.SimilarTo
	if similar == nil {
		similar = []string{}
	}
	return cachedAction{
		ID:                     d.ID,
		Text:                   d.Text,
		OriginalText:           d.OriginalText,
		Minutes:                d.Minutes,
		RepeatableDaily:        d.RepeatableDaily,
		MustBeLoggedAtEndOfDay: d.MustBeLoggedAtEndOfDay,
		Warning:                d.Warning,
		SimilarTo:              similar,
		Origin:                 string(d.Origin),
		OwnerUserID:            d.OwnerUserID,
	}
}

func (c cachedAction) toDomain() domain.ActionDefinition {
	similar := c.SimilarTo
	if similar == nil {
		similar = []string{}
	}
	return domain.ActionDefinition{
		ID:                     c.ID,
		Text:                   c.Text,
		OriginalText:           c.OriginalText,
		Minutes:                c.Minutes,
		RepeatableDaily:        c.RepeatableDaily,
		MustBeLoggedAtEndOfDay: c.MustBeLoggedAtEndOfDay,
		Warning:                c.Warning,
		SimilarTo:              similar,
		Origin:                 domain.ActionOrigin(c.Origin),
		OwnerUserID:            c.OwnerUserID,
	}
}
