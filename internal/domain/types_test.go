package domain

import "testing"

func TestNormalize(t *testing.T) {
	p := ListParams{Page: 0, Limit: 0}.Normalize()
	if p.Page != 1 || p.Limit != DefaultLimit {
		t.Fatalf("Normalize zero values = %+v", p)
	}

	p = ListParams{Page: -3, Limit: 1000}.Normalize()
	if p.Page != 1 || p.Limit != MaxLimit {
		t.Fatalf("Normalize out-of-range = %+v", p)
	}

	p = ListParams{Page: 3, Limit: 25}.Normalize()
	if p.Page != 3 || p.Limit != 25 {
		t.Fatalf("Normalize valid values changed: %+v", p)
	}
	if p.Offset() != 50 {
		t.Fatalf("Offset = %d, want 50", p.Offset())
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, limit, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
		{5, 0, 0},
	}
	for _, c := range cases {
		if got := TotalPages(c.total, c.limit); got != c.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", c.total, c.limit, got, c.want)
		}
	}
}

func TestNewPaginated(t *testing.T) {
	p := ListParams{Page: 2, Limit: 10}.Normalize()
	env := NewPaginated[string](nil, 25, p)
	if env.Data == nil {
		t.Fatalf("Data must never be nil")
	}
	if env.Total != 25 || env.Page != 2 || env.TotalPages != 3 {
		t.Fatalf("envelope = %+v", env)
	}
}
