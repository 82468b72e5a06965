package interop

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	pb "github.com/hciworks/interaction-core/gen/interop"
	"google.golang.org/grpc"
)

// #region mock
type mockRemotingService struct {
	pb.RemotingClient

	listResp *pb.ListStreamsResponse
	listErr  error

	publishReq  *pb.PublishRequest
	publishResp *pb.PublishResponse
	publishErr  error

	subscribeMsgs []*pb.StreamMessage
	subscribeErr  error
}

func (m *mockRemotingService) ListStreams(_ context.Context, _ *pb.ListStreamsRequest, _ ...grpc.CallOption) (*pb.ListStreamsResponse, error) {
	return m.listResp, m.listErr
}

func (m *mockRemotingService) Publish(_ context.Context, req *pb.PublishRequest, _ ...grpc.CallOption) (*pb.PublishResponse, error) {
	m.publishReq = req
	return m.publishResp, m.publishErr
}

func (m *mockRemotingService) Subscribe(_ context.Context, _ *pb.SubscribeRequest, _ ...grpc.CallOption) (grpc.ServerStreamingClient[pb.StreamMessage], error) {
	if m.subscribeErr != nil {
		return nil, m.subscribeErr
	}
	return &mockSubscribeStream{msgs: m.subscribeMsgs}, nil
}

type mockSubscribeStream struct {
	grpc.ClientStream

	msgs []*pb.StreamMessage
	i    int
}

func (s *mockSubscribeStream) Recv() (*pb.StreamMessage, error) {
	if s.i >= len(s.msgs) {
		return nil, io.EOF
	}
	m := s.msgs[s.i]
	s.i++
	return m, nil
}

// #endregion mock

// #region constructor-tests
func TestNewClientWithService(t *testing.T) {
	c := NewClientWithService(&mockRemotingService{})
	if c == nil {
		t.Fatal("expected non-nil client")
	}
	if c.client == nil {
		t.Fatal("expected non-nil internal client")
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close without connection: %v", err)
	}
}

// #endregion constructor-tests

// #region list-tests
func TestListStreams(t *testing.T) {
	mock := &mockRemotingService{
		listResp: &pb.ListStreamsResponse{
			Streams: []*pb.StreamInfo{
				{StreamId: 1, Name: "audio.utterances", Type: "utterance"},
				{StreamId: 2, Name: "gaze.targets", Type: "target"},
			},
		},
	}
	c := NewClientWithService(mock)

	streams, err := c.ListStreams(context.Background())
	if err != nil {
		t.Fatalf("list streams: %v", err)
	}
	if len(streams) != 2 {
		t.Fatalf("expected 2 streams, got %d", len(streams))
	}
	if streams[0].Name != "audio.utterances" || streams[0].ID != 1 {
		t.Fatalf("unexpected stream %+v", streams[0])
	}
}

func TestListStreamsError(t *testing.T) {
	c := NewClientWithService(&mockRemotingService{listErr: errors.New("boom")})
	if _, err := c.ListStreams(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

// #endregion list-tests

// #region publish-tests
func TestPublish(t *testing.T) {
	mock := &mockRemotingService{publishResp: &pb.PublishResponse{MessageId: 42}}
	c := NewClientWithService(mock)

	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	id, err := c.Publish(context.Background(), "audio.utterances", "utterance", at, []byte(`{"text":"hi"}`))
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected message id 42, got %d", id)
	}
	if mock.publishReq.Stream != "audio.utterances" {
		t.Fatalf("unexpected request %+v", mock.publishReq)
	}
	if mock.publishReq.OriginatingTimeUnixNanos != at.UnixNano() {
		t.Fatalf("unexpected originating time %d", mock.publishReq.OriginatingTimeUnixNanos)
	}
}

// #endregion publish-tests

// #region subscribe-tests
func TestSubscribeDrainsUntilEOF(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	mock := &mockRemotingService{
		subscribeMsgs: []*pb.StreamMessage{
			{MessageId: 1, Stream: "a", OriginatingTimeUnixNanos: at.UnixNano(), Payload: []byte(`1`)},
			{MessageId: 2, Stream: "a", OriginatingTimeUnixNanos: at.Add(time.Second).UnixNano(), Payload: []byte(`2`)},
		},
	}
	c := NewClientWithService(mock)

	var got []Event
	err := c.Subscribe(context.Background(), "a", at, func(ev Event) error {
		got = append(got, ev)
		return nil
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].MessageID != 1 || !got[0].OriginatingTime.Equal(at) {
		t.Fatalf("unexpected event %+v", got[0])
	}
}

func TestSubscribeCallbackErrorStops(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	mock := &mockRemotingService{
		subscribeMsgs: []*pb.StreamMessage{
			{MessageId: 1, Stream: "a"},
			{MessageId: 2, Stream: "a"},
		},
	}
	c := NewClientWithService(mock)

	stop := errors.New("stop")
	calls := 0
	err := c.Subscribe(context.Background(), "a", at, func(Event) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) {
		t.Fatalf("expected callback error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 callback, got %d", calls)
	}
}

// #endregion subscribe-tests
