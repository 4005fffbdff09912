package ui

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"stayhub/internal/domain"
)

const (
	displayDate = "January 2, 2006"

	MsgPropertyLoadFailed = "Failed to load property details. Please try again."
)

// RenderStars draws five stars, filling one per whole point of rating.
func RenderStars(rating float64) string {
	var b strings.Builder
	for star := 1; star <= 5; star++ {
		if float64(star) <= rating {
			b.WriteString("★")
		} else {
			b.WriteString("☆")
		}
	}
	return b.String()
}

// RenderReviews writes the review section for s as plain text.
func RenderReviews(w io.Writer, s ListSnapshot) error {
	var b strings.Builder
	b.WriteString("Guest Reviews\n")
	switch s.State {
	case StateLoading:
		b.WriteString("  Loading reviews...\n")
	case StateError:
		fmt.Fprintf(&b, "  %s\n", s.Message)
	default:
		if s.Stats.Count == 0 {
			b.WriteString("  No reviews yet\n  Be the first to review this property!\n")
			break
		}
		fmt.Fprintf(&b, "  %.1f %s  %s\n\n", s.Stats.MeanRating, RenderStars(s.Stats.MeanRating), countLabel(s.Stats.Count))
		for _, r := range s.Reviews {
			writeReview(&b, r)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func countLabel(n int) string {
	if n == 1 {
		return "1 review"
	}
	return fmt.Sprintf("%d reviews", n)
}

func writeReview(b *strings.Builder, r domain.Review) {
	fmt.Fprintf(b, "  [%s] %s  %s  %s\n", avatar(r), r.UserName, formatDate(r.Date), RenderStars(float64(r.Rating)))
	fmt.Fprintf(b, "    %s\n\n", r.Comment)
}

// avatar is the image URI, or the upper-cased first letter of the name.
func avatar(r domain.Review) string {
	if r.UserAvatar != nil && *r.UserAvatar != "" {
		return *r.UserAvatar
	}
	c, _ := utf8.DecodeRuneInString(r.UserName)
	if c == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(c))
}

func formatDate(d string) string {
	t, err := time.Parse(domain.DateLayout, d)
	if err != nil {
		return d
	}
	return t.Format(displayDate)
}

// RenderProperty writes the static property fields shown above the reviews.
func RenderProperty(w io.Writer, p domain.Property) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n$%s\n", p.Title, p.Location, humanize.Commaf(p.Price))
	var facts []string
	if p.Bedrooms != nil {
		facts = append(facts, fmt.Sprintf("%d bedrooms", *p.Bedrooms))
	}
	if p.Bathrooms != nil {
		facts = append(facts, fmt.Sprintf("%d bathrooms", *p.Bathrooms))
	}
	if p.Size != nil {
		facts = append(facts, fmt.Sprintf("%d sq ft", *p.Size))
	}
	if p.YearBuilt != nil {
		facts = append(facts, fmt.Sprintf("built %d", *p.YearBuilt))
	}
	if len(facts) > 0 {
		b.WriteString(strings.Join(facts, " · ") + "\n")
	}
	if p.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", p.Description)
	}
	if len(p.Amenities) > 0 {
		fmt.Fprintf(&b, "\nAmenities: %s\n", strings.Join(p.Amenities, ", "))
	}
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}
