package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/hciworks/interaction-core/internal/cache"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func at(t *testing.T, sec int) time.Time {
	t.Helper()
	return time.Date(2024, 6, 1, 12, 0, sec, 0, time.UTC)
}

func fillStream(t *testing.T, s *Store, streamID int64, secs ...int) {
	t.Helper()
	for _, sec := range secs {
		payload := []byte(fmt.Sprintf(`{"sec":%d}`, sec))
		if _, err := s.Append(streamID, at(t, sec), payload); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
}

func TestCreateStreamIsIdempotent(t *testing.T) {
	s := openTestStore(t)

	st1, err := s.CreateStream("audio.utterances", "utterance")
	if err != nil {
		t.Fatalf("create stream: %v", err)
	}
	st2, err := s.CreateStream("audio.utterances", "utterance")
	if err != nil {
		t.Fatalf("create stream again: %v", err)
	}
	if st1.ID != st2.ID {
		t.Fatalf("expected same stream, got %d and %d", st1.ID, st2.ID)
	}
}

func TestCreateStreamTypeConflict(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.CreateStream("audio.utterances", "utterance"); err != nil {
		t.Fatalf("create stream: %v", err)
	}
	if _, err := s.CreateStream("audio.utterances", "frame"); err == nil {
		t.Fatal("expected type conflict error")
	}
}

func TestGetStreamMissing(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.GetStream("nope"); err == nil {
		t.Fatal("expected error for missing stream")
	}
}

func TestStreamsListsInCreationOrder(t *testing.T) {
	s := openTestStore(t)

	for _, name := range []string{"a", "b", "c"} {
		if _, err := s.CreateStream(name, "test"); err != nil {
			t.Fatalf("create stream: %v", err)
		}
	}
	streams, err := s.Streams()
	if err != nil {
		t.Fatalf("list streams: %v", err)
	}
	if len(streams) != 3 {
		t.Fatalf("expected 3 streams, got %d", len(streams))
	}
	for i, name := range []string{"a", "b", "c"} {
		if streams[i].Name != name {
			t.Fatalf("stream %d: expected %s, got %s", i, name, streams[i].Name)
		}
	}
}

func TestAppendAndRange(t *testing.T) {
	s := openTestStore(t)
	st, err := s.CreateStream("audio.utterances", "utterance")
	if err != nil {
		t.Fatalf("create stream: %v", err)
	}
	fillStream(t, s, st.ID, 3, 1, 5, 2, 4)

	// Half-open interval: 2 included, 5 excluded.
	msgs, err := s.Range(st.ID, at(t, 2), at(t, 5))
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	for i, sec := range []int{2, 3, 4} {
		if !msgs[i].OriginatingTime.Equal(at(t, sec)) {
			t.Fatalf("message %d: expected t+%ds, got %v", i, sec, msgs[i].OriginatingTime)
		}
	}
	if string(msgs[0].Payload) != `{"sec":2}` {
		t.Fatalf("unexpected payload %s", msgs[0].Payload)
	}
}

func TestRangeIsScopedToStream(t *testing.T) {
	s := openTestStore(t)
	a, _ := s.CreateStream("a", "test")
	b, _ := s.CreateStream("b", "test")
	fillStream(t, s, a.ID, 1, 2)
	fillStream(t, s, b.ID, 3)

	msgs, err := s.Range(a.ID, at(t, 0), at(t, 10))
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages from stream a, got %d", len(msgs))
	}
}

func TestTailReturnsLastInOrder(t *testing.T) {
	s := openTestStore(t)
	st, _ := s.CreateStream("a", "test")
	fillStream(t, s, st.ID, 1, 2, 3, 4, 5)

	msgs, err := s.Tail(st.ID, 2)
	if err != nil {
		t.Fatalf("tail: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if !msgs[0].OriginatingTime.Equal(at(t, 4)) || !msgs[1].OriginatingTime.Equal(at(t, 5)) {
		t.Fatalf("unexpected tail order %v %v", msgs[0].OriginatingTime, msgs[1].OriginatingTime)
	}
}

func TestTailLargerThanStream(t *testing.T) {
	s := openTestStore(t)
	st, _ := s.CreateStream("a", "test")
	fillStream(t, s, st.ID, 1, 2)

	msgs, err := s.Tail(st.ID, 10)
	if err != nil {
		t.Fatalf("tail: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
}

func TestAppendBatchAndCount(t *testing.T) {
	s := openTestStore(t)
	st, _ := s.CreateStream("a", "test")

	batch := make([]Message, 0, 4)
	for _, sec := range []int{1, 2, 3, 4} {
		batch = append(batch, Message{
			OriginatingTime: at(t, sec),
			Payload:         []byte(`{}`),
		})
	}
	if err := s.AppendBatch(st.ID, batch); err != nil {
		t.Fatalf("append batch: %v", err)
	}
	n, err := s.Count(st.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4 messages, got %d", n)
	}
}

func TestLoadRangeHydratesCache(t *testing.T) {
	s := openTestStore(t)
	st, _ := s.CreateStream("a", "test")
	fillStream(t, s, st.ID, 1, 2, 3, 4, 5)

	c := NewMessageCache(cache.DefaultPruneConfig())
	changes := 0
	c.OnDetailedChanged(func(ch cache.Change[Message]) { changes++ })

	n, err := s.LoadRange(c, st.ID, at(t, 2), at(t, 5))
	if err != nil {
		t.Fatalf("load range: %v", err)
	}
	if n != 3 || c.Count() != 3 {
		t.Fatalf("expected 3 cached messages, got n=%d count=%d", n, c.Count())
	}
	// A contiguous ordered load is one cache change.
	if changes != 1 {
		t.Fatalf("expected 1 change, got %d", changes)
	}

	v, err := c.GetView(cache.ViewFixed, at(t, 2), at(t, 4), 0, nil)
	if err != nil {
		t.Fatalf("get view: %v", err)
	}
	defer v.Close()
	if v.Len() != 2 {
		t.Fatalf("expected view of 2, got %d", v.Len())
	}
}

func TestLoadTailHydratesCache(t *testing.T) {
	s := openTestStore(t)
	st, _ := s.CreateStream("a", "test")
	fillStream(t, s, st.ID, 1, 2, 3, 4)

	c := NewMessageCache(cache.DefaultPruneConfig())
	n, err := s.LoadTail(c, st.ID, 2)
	if err != nil {
		t.Fatalf("load tail: %v", err)
	}
	if n != 2 || c.Count() != 2 {
		t.Fatalf("expected 2 cached messages, got n=%d count=%d", n, c.Count())
	}
	m, ok := c.TryGetValue(at(t, 3))
	if !ok || !m.OriginatingTime.Equal(at(t, 3)) {
		t.Fatalf("expected message at t+3s, got %v ok=%v", m.OriginatingTime, ok)
	}
}
