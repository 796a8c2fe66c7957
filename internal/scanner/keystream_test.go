package scanner

import (
	"testing"
	"time"
)

// typeKeys - последовательность символов с фиксированным интервалом
func typeKeys(start time.Time, step time.Duration, text string) []Key {
	keys := make([]Key, 0, len(text)+1)
	at := start
	for _, r := range text {
		keys = append(keys, Key{Rune: r, At: at})
		at = at.Add(step)
	}
	return append(keys, Key{Enter: true, At: at})
}

func TestKeystream_Intercept(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		TestName     string
		Keys         []Key
		ExpectedText string
		ExpectedOK   bool
	}{
		{
			TestName:     "Success. Fast scanner burst #1",
			Keys:         typeKeys(start, 5*time.Millisecond, "abc1234567"),
			ExpectedText: "abc1234567",
			ExpectedOK:   true,
		},
		{
			TestName: "Success. Slow manual typing dropped before burst #2",
			Keys: append(
				[]Key{{Rune: 'x', At: start}, {Rune: 'y', At: start.Add(time.Second)}},
				typeKeys(start.Add(2*time.Second), 10*time.Millisecond, "abc1234567")...,
			),
			ExpectedText: "abc1234567",
			ExpectedOK:   true,
		},
		{
			TestName: "Success. Gap exactly at threshold keeps buffer #3",
			Keys: []Key{
				{Rune: 'a', At: start},
				{Rune: 'b', At: start.Add(DefaultKeyGap)},
				{Enter: true, At: start.Add(DefaultKeyGap + time.Millisecond)},
			},
			ExpectedText: "ab",
			ExpectedOK:   true,
		},
		{
			TestName: "Success. Non printable keys ignored #4",
			Keys: []Key{
				{Rune: 'a', At: start},
				{Rune: 0x1b, At: start.Add(time.Millisecond)},
				{Rune: 'b', At: start.Add(2 * time.Millisecond)},
				{Enter: true, At: start.Add(3 * time.Millisecond)},
			},
			ExpectedText: "ab",
			ExpectedOK:   true,
		},
		{
			TestName:   "Error. Enter on empty buffer #5",
			Keys:       []Key{{Enter: true, At: start}},
			ExpectedOK: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			stream := NewKeystream(DefaultKeyGap)
			var (
				event Event
				ok    bool
			)
			for _, key := range tc.Keys {
				event, ok = stream.InterceptKey(key)
			}
			if ok != tc.ExpectedOK {
				t.Fatalf("Expected flush: '%v', got: '%v'", tc.ExpectedOK, ok)
			}
			if !ok {
				return
			}
			if event.RawText != tc.ExpectedText {
				t.Errorf("Expected text: '%v', got: '%v'", tc.ExpectedText, event.RawText)
			}
			if event.Source != SourceHIDIntercept {
				t.Errorf("Expected source: '%v', got: '%v'", SourceHIDIntercept, event.Source)
			}
		})
	}
}

func TestKeystream_Field(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	stream := NewKeystream(DefaultKeyGap)

	// поле ввода не сбрасывается по паузе
	var (
		event Event
		ok    bool
	)
	for _, key := range typeKeys(start, time.Second, " abc1234567 ") {
		event, ok = stream.FieldKey(key)
	}
	if !ok {
		t.Fatalf("Expected field flush on Enter")
	}
	if event.RawText != "abc1234567" {
		t.Errorf("Expected text: 'abc1234567', got: '%v'", event.RawText)
	}
	if event.Source != SourceHIDField {
		t.Errorf("Expected source: '%v', got: '%v'", SourceHIDField, event.Source)
	}
}

func TestKeystream_FirstEnterWins(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	stream := NewKeystream(DefaultKeyGap)

	// оба пути видят одни и те же нажатия
	keys := typeKeys(start, 5*time.Millisecond, "abc1234567")
	for _, key := range keys[:len(keys)-1] {
		stream.FieldKey(key)
		stream.InterceptKey(key)
	}
	enter := keys[len(keys)-1]

	event, ok := stream.InterceptKey(enter)
	if !ok || event.RawText != "abc1234567" {
		t.Fatalf("Expected intercept flush 'abc1234567', got: '%v' (%v)", event.RawText, ok)
	}
	if _, ok := stream.FieldKey(enter); ok {
		t.Errorf("Expected field path to flush nothing after intercept won")
	}
	field, burst := stream.Pending()
	if field != "" || burst != "" {
		t.Errorf("Expected both buffers empty, got field: '%v', burst: '%v'", field, burst)
	}
}

func TestKeystream_EmptyEnterKeepsOtherBuffer(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		TestName       string
		Type           func(s *Keystream, key Key) (Event, bool)
		EmptyEnter     func(s *Keystream, key Key) (Event, bool)
		ExpectedSource Source
	}{
		{
			TestName:       "Success. Field Enter before intercept #1",
			Type:           (*Keystream).InterceptKey,
			EmptyEnter:     (*Keystream).FieldKey,
			ExpectedSource: SourceHIDIntercept,
		},
		{
			TestName:       "Success. Intercept Enter before field #2",
			Type:           (*Keystream).FieldKey,
			EmptyEnter:     (*Keystream).InterceptKey,
			ExpectedSource: SourceHIDField,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			stream := NewKeystream(DefaultKeyGap)
			keys := typeKeys(start, 5*time.Millisecond, "abc1234567")
			for _, key := range keys[:len(keys)-1] {
				tc.Type(stream, key)
			}
			enter := keys[len(keys)-1]

			// путь без данных не должен стирать чужой буфер
			if _, ok := tc.EmptyEnter(stream, enter); ok {
				t.Fatalf("Expected no flush from empty path")
			}
			event, ok := tc.Type(stream, enter)
			if !ok {
				t.Fatalf("Expected flush from path holding data")
			}
			if event.RawText != "abc1234567" {
				t.Errorf("Expected text: 'abc1234567', got: '%v'", event.RawText)
			}
			if event.Source != tc.ExpectedSource {
				t.Errorf("Expected source: '%v', got: '%v'", tc.ExpectedSource, event.Source)
			}
		})
	}
}
