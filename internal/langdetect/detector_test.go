package langdetect

import (
	"strings"
	"sync"
	"testing"
	"unicode/utf8"
)

func TestDetector_Detect(t *testing.T) {
	d := New(0)

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "english",
			text: "The quick brown fox jumps over the lazy dog while the farmer watches from the porch of his house.",
			want: "en",
		},
		{
			name: "german",
			text: "Der schnelle braune Fuchs springt über den faulen Hund, während der Bauer von der Veranda seines Hauses zusieht.",
			want: "de",
		},
		{
			name: "short english",
			text: "Hello world",
			want: "en",
		},
		{
			name: "short french",
			text: "Bonjour tout le monde",
			want: "fr",
		},
		{
			name: "empty",
			text: "   \n\t ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Detect(tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetector_ShortTextSkipsTrigramModel(t *testing.T) {
	d := New(0)
	if _, ok := d.detectTrigram("Hello world"); ok {
		t.Fatalf("expected trigram model to abstain on a two-word sample")
	}
}

func TestDetector_MinConfidence(t *testing.T) {
	d := New(1.1)
	for _, text := range []string{
		"The quick brown fox jumps over the lazy dog.",
		"Hello world",
	} {
		got, err := d.Detect(text)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "" {
			t.Fatalf("expected no match above an impossible threshold for %q, got %q", text, got)
		}
	}
}

func TestDetector_Concurrent(t *testing.T) {
	d := New(0)

	var wg sync.WaitGroup
	results := make(chan string, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, _ := d.Detect("Hello world")
			results <- code
		}()
	}
	wg.Wait()
	close(results)

	for code := range results {
		if code != "en" {
			t.Fatalf("expected en from every goroutine, got %q", code)
		}
	}
}

func TestTruncate(t *testing.T) {
	s := strings.Repeat("é", 10) // 20 bytes
	got := truncate(s, 5)
	if !utf8.ValidString(got) {
		t.Fatalf("truncate split a rune: %q", got)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 bytes, got %d", len(got))
	}
	if truncate("short", 100) != "short" {
		t.Fatalf("expected short strings to pass through")
	}
}
