package poker

import (
	"testing"
)

func TestCardString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		card Card
		want string
	}{
		{NewCard(Ace, Spades), "As"},
		{NewCard(Two, Clubs), "2c"},
		{NewCard(Ten, Hearts), "Th"},
		{NewCard(King, Diamonds), "Kd"},
		{NewCard(1, Spades), "[1]s"},
		{NewCard(15, Hearts), "[15]h"},
		{NewCard(Five, "stars"), "5(stars)"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{"ace of spades", "As", NewCard(Ace, Spades), false},
		{"two of hearts", "2h", NewCard(Two, Hearts), false},
		{"ten with T notation", "Tc", NewCard(Ten, Clubs), false},
		{"ten with digits", "10d", NewCard(Ten, Diamonds), false},
		{"lower case", "qs", NewCard(Queen, Spades), false},
		{"invalid rank", "Xs", Card{}, true},
		{"invalid suit", "Ax", Card{}, true},
		{"empty string", "", Card{}, true},
		{"too short", "A", Card{}, true},
		{"too long", "Asd", Card{}, true},
		{"one as rank", "1s", Card{}, true},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseCard(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if card != tc.wantCard {
				t.Errorf("ParseCard(%q) = %v, want %v", tc.input, card, tc.wantCard)
			}
		})
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	cards, err := ParseCards("As Kd,Qh\t10c")
	if err != nil {
		t.Fatalf("ParseCards failed: %v", err)
	}
	if got := FormatCards(cards); got != "As Kd Qh Tc" {
		t.Errorf("FormatCards = %q", got)
	}

	if _, err := ParseCards("As Zz"); err == nil {
		t.Error("Expected error for invalid card")
	}

	empty, err := ParseCards("")
	if err != nil || len(empty) != 0 {
		t.Errorf("Expected empty result, got %v, %v", empty, err)
	}
}

func TestSortByRank(t *testing.T) {
	t.Parallel()
	cards := []Card{
		NewCard(Three, Hearts),
		NewCard(Ace, Clubs),
		NewCard(Three, Spades),
		NewCard(Nine, Diamonds),
	}

	SortByRank(cards)

	want := "Ac 9d 3h 3s"
	if got := FormatCards(cards); got != want {
		t.Errorf("SortByRank = %q, want %q", got, want)
	}
}

func TestRankFrequencies(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards string
		want  []int
	}{
		{"empty hand is padded", "", []int{0, 0}},
		{"single card is padded", "As", []int{1, 0}},
		{"one rank is padded", "As Ah Ad", []int{3, 0}},
		{"full house", "3h 3c 3d 2s 2h", []int{3, 2}},
		{"two pair", "Jh Jc 4d 4s 2h", []int{2, 2, 1}},
		{"all distinct", "Kh Jc 8d 4s 2h", []int{1, 1, 1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards, err := ParseCards(tt.cards)
			if err != nil {
				t.Fatal(err)
			}
			got := RankFrequencies(cards)
			if len(got) != len(tt.want) {
				t.Fatalf("RankFrequencies(%s) = %v, want %v", tt.cards, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("RankFrequencies(%s) = %v, want %v", tt.cards, got, tt.want)
					break
				}
			}
		})
	}
}
