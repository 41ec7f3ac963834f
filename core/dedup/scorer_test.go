package dedup

import "testing"

func TestExactScorer(t *testing.T) {
	s := ExactScorer{}
	if got := s.Score("team a wins", "team a wins"); got != 100 {
		t.Errorf("Score(equal) = %d, want 100", got)
	}
	if got := s.Score("team a wins", "team a win"); got != 0 {
		t.Errorf("Score(different) = %d, want 0", got)
	}
	if s.Name() != "exact" {
		t.Errorf("Name() = %s, want exact", s.Name())
	}
}

func TestTokenSetScorer_Identical(t *testing.T) {
	s := TokenSetScorer{}
	if got := s.Score("lakers beat celtics", "lakers beat celtics"); got != 100 {
		t.Errorf("Score(identical) = %d, want 100", got)
	}
	if got := s.Score("", ""); got != 100 {
		t.Errorf("Score(empty, empty) = %d, want 100", got)
	}
}

func TestTokenSetScorer_OneEmpty(t *testing.T) {
	s := TokenSetScorer{}
	if got := s.Score("lakers beat celtics", ""); got != 0 {
		t.Errorf("Score(title, empty) = %d, want 0", got)
	}
}

func TestTokenSetScorer_WordOrderIgnored(t *testing.T) {
	s := TokenSetScorer{}
	got := s.Score("celtics beat lakers", "lakers beat celtics")
	if got != 99 {
		t.Errorf("Score(reordered) = %d, want 99", got)
	}
}

func TestTokenSetScorer_SubsetIsNearDuplicate(t *testing.T) {
	s := TokenSetScorer{}
	got := s.Score("arsenal beat chelsea 20 in derby", "arsenal beat chelsea 20 in the derby")
	if got < DefaultThreshold || got > 99 {
		t.Errorf("Score(subset) = %d, want in [%d,99]", got, DefaultThreshold)
	}
}

func TestTokenSetScorer_UnrelatedTitles(t *testing.T) {
	s := TokenSetScorer{}
	got := s.Score("lakers beat celtics", "warriors lose to suns")
	if got >= DefaultThreshold {
		t.Errorf("Score(unrelated) = %d, want < %d", got, DefaultThreshold)
	}
}

func TestTokenSetScorer_Symmetric(t *testing.T) {
	s := TokenSetScorer{}
	pairs := [][2]string{
		{"verstappen wins in monaco", "verstappen takes monaco win"},
		{"djokovic into final", "alcaraz into semi final"},
		{"a", "ab"},
	}
	for _, p := range pairs {
		if ab, ba := s.Score(p[0], p[1]), s.Score(p[1], p[0]); ab != ba {
			t.Errorf("Score(%q,%q)=%d but reversed=%d", p[0], p[1], ab, ba)
		}
	}
}

func TestTokenSetScorer_Bounds(t *testing.T) {
	s := TokenSetScorer{}
	pairs := [][2]string{
		{"x", "y"},
		{"short", "a much longer title about something else"},
		{"über", "uber"},
	}
	for _, p := range pairs {
		got := s.Score(p[0], p[1])
		if got < 0 || got > 99 {
			t.Errorf("Score(%q,%q) = %d, want within [0,99]", p[0], p[1], got)
		}
	}
}

func TestSelectScorer(t *testing.T) {
	if _, ok := SelectScorer(true).(TokenSetScorer); !ok {
		t.Error("SelectScorer(true) should return TokenSetScorer")
	}
	if _, ok := SelectScorer(false).(ExactScorer); !ok {
		t.Error("SelectScorer(false) should return ExactScorer")
	}
}
