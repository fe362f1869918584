package domain

import (
	"fmt"
	"unicode/utf8"
)

// Limits applied to creative copy before a campaign is accepted.
const (
	MaxHeadlineLen = 25
	MaxTaglineLen  = 50
	MaxTags        = 10
)

// Creative is the ad content submitted by a provider.
type Creative struct {
	Headline string   `json:"headline"`
	Tagline  string   `json:"tagline"`
	Tags     []string `json:"tags"`
	ImageRef string   `json:"image_ref,omitempty"`
}

// Validate checks the creative against copy limits. Violations are returned
// as validation errors suitable for the API boundary.
func (c Creative) Validate() error {
	if c.Headline == "" {
		return fmt.Errorf("%w: headline is required", ErrInvalidCreative)
	}
	if utf8.RuneCountInString(c.Headline) > MaxHeadlineLen {
		return fmt.Errorf("%w: headline exceeds %d characters", ErrInvalidCreative, MaxHeadlineLen)
	}
	if utf8.RuneCountInString(c.Tagline) > MaxTaglineLen {
		return fmt.Errorf("%w: tagline exceeds %d characters", ErrInvalidCreative, MaxTaglineLen)
	}
	if len(c.Tags) > MaxTags {
		return fmt.Errorf("%w: at most %d tags allowed", ErrInvalidCreative, MaxTags)
	}
	for _, tag := range c.Tags {
		if tag == "" {
			return fmt.Errorf("%w: empty tag", ErrInvalidCreative)
		}
	}
	return nil
}
