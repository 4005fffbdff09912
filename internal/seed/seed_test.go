package seed_test

import (
	"testing"

	"stayhub/internal/domain"
	"stayhub/internal/seed"
)

func TestDefault_SeedShape(t *testing.T) {
	d, err := seed.Default()
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(d.Properties) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(d.Properties))
	}
	revs := d.ReviewsByProperty()
	if len(revs["1"]) != 3 || revs["1"][0].ID != "rev1" {
		t.Fatalf("unexpected reviews for 1: %+v", revs["1"])
	}
	if revs["1"][2].UserAvatar != nil {
		t.Fatalf("rev3 has no avatar in seed")
	}
	if st := domain.Aggregate(revs["1"]); st.Count != 3 || st.MeanRating != 4.7 {
		t.Fatalf("unexpected stats: %+v", st)
	}
}

func TestParse_RejectsOutOfRangeRating(t *testing.T) {
	_, err := seed.Parse([]byte(`
reviews:
  "1":
    - id: bad
      rating: 7
`))
	if err == nil {
		t.Fatalf("expected error for rating 7")
	}
}
