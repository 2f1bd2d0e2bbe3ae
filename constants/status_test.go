package constants

import "testing"

func TestStatusNextChain(t *testing.T) {
	order := []ExtractionStatus{StatusToRecognize, StatusToExtract, StatusToVerify, StatusProcessed}
	for i := 0; i < len(order)-1; i++ {
		next, ok := order[i].Next()
		if !ok {
			t.Fatalf("%s should have a successor", order[i])
		}
		if next != order[i+1] {
			t.Fatalf("%s.Next() = %s, want %s", order[i], next, order[i+1])
		}
	}
	if _, ok := StatusProcessed.Next(); ok {
		t.Fatal("PROCESSED must be terminal")
	}
}

func TestCanTransitionRejectsSkipsAndBackwards(t *testing.T) {
	all := []ExtractionStatus{StatusToRecognize, StatusToExtract, StatusToVerify, StatusProcessed}
	for _, from := range all {
		for _, to := range all {
			got := CanTransition(from, to)
			want := to.Rank() == from.Rank()+1
			if got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
	if CanTransition("GARBAGE", StatusToExtract) {
		t.Error("unknown status must not transition anywhere")
	}
}

func TestRankOrdersPipeline(t *testing.T) {
	if !(StatusToRecognize.Rank() < StatusToExtract.Rank() &&
		StatusToExtract.Rank() < StatusToVerify.Rank() &&
		StatusToVerify.Rank() < StatusProcessed.Rank()) {
		t.Fatal("ranks must be strictly increasing along the pipeline")
	}
	if ExtractionStatus("BOGUS").Rank() != 0 {
		t.Fatal("unknown status must rank below every real status")
	}
}

func TestStatusStringsCoversAll(t *testing.T) {
	got := StatusStrings()
	want := []string{"TO_RECOGNIZE", "TO_EXTRACT", "TO_VERIFY", "PROCESSED"}
	if len(got) != len(want) {
		t.Fatalf("got %d statuses, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("StatusStrings()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
