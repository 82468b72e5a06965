package interop

import (
	"context"
	"log"
	"time"

	pb "github.com/hciworks/interaction-core/gen/interop"
	"github.com/hciworks/interaction-core/internal/store"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// #region server-struct
// Server serves the remoting API over a stream store. An optional publish
// hook lets the host process feed live caches from incoming messages.
type Server struct {
	pb.UnimplementedRemotingServer

	store        *store.Store
	onPublish    func(store.Message)
	pollInterval time.Duration
}

// NewServer creates a remoting server over an open store. onPublish may be
// nil.
func NewServer(st *store.Store, onPublish func(store.Message)) *Server {
	return &Server{
		store:        st,
		onPublish:    onPublish,
		pollInterval: 250 * time.Millisecond,
	}
}

// Register registers the server on a grpc server.
func (s *Server) Register(g *grpc.Server) {
	pb.RegisterRemotingServer(g, s)
}
// #endregion server-struct

// #region list-streams
// ListStreams implements pb.RemotingServer.
func (s *Server) ListStreams(ctx context.Context, req *pb.ListStreamsRequest) (*pb.ListStreamsResponse, error) {
	streams, err := s.store.Streams()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list streams: %v", err)
	}
	resp := &pb.ListStreamsResponse{}
	for _, st := range streams {
		resp.Streams = append(resp.Streams, &pb.StreamInfo{
			StreamId: st.ID,
			Name:     st.Name,
			Type:     st.Type,
		})
	}
	return resp, nil
}
// #endregion list-streams

// #region publish
// Publish implements pb.RemotingServer: appends one message to the named
// stream, creating the stream on first use.
func (s *Server) Publish(ctx context.Context, req *pb.PublishRequest) (*pb.PublishResponse, error) {
	if req.Stream == "" {
		return nil, status.Error(codes.InvalidArgument, "stream name required")
	}
	st, err := s.store.CreateStream(req.Stream, req.Type)
	if err != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "create stream: %v", err)
	}
	msg, err := s.store.Append(st.ID, time.Unix(0, req.OriginatingTimeUnixNanos).UTC(), req.Payload)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "append: %v", err)
	}
	if s.onPublish != nil {
		s.onPublish(msg)
	}
	return &pb.PublishResponse{MessageId: msg.ID}, nil
}
// #endregion publish

// #region subscribe
// Subscribe implements pb.RemotingServer: sends the stream's persisted
// messages with originating time at or after the requested point, then
// keeps polling the store for new messages until the client goes away.
func (s *Server) Subscribe(req *pb.SubscribeRequest, stream grpc.ServerStreamingServer[pb.StreamMessage]) error {
	st, err := s.store.GetStream(req.Stream)
	if err != nil {
		return status.Errorf(codes.NotFound, "stream %s: %v", req.Stream, err)
	}

	ctx := stream.Context()
	from := time.Unix(0, req.FromUnixNanos).UTC()

	// Snapshot first. The far end marks the bottom of the backlog.
	msgs, err := s.store.Range(st.ID, from, time.Unix(0, 1<<62).UTC())
	if err != nil {
		return status.Errorf(codes.Internal, "range: %v", err)
	}
	var lastID int64
	for _, m := range msgs {
		if err := sendMessage(stream, st.Name, m); err != nil {
			return err
		}
		if m.ID > lastID {
			lastID = m.ID
		}
	}
	log.Printf("[INTEROP] subscribe stream=%s backlog=%d", st.Name, len(msgs))

	// Then tail the store until the client disconnects.
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			fresh, err := s.store.After(st.ID, lastID)
			if err != nil {
				return status.Errorf(codes.Internal, "after: %v", err)
			}
			for _, m := range fresh {
				if err := sendMessage(stream, st.Name, m); err != nil {
					return err
				}
				if m.ID > lastID {
					lastID = m.ID
				}
			}
		}
	}
}

func sendMessage(stream grpc.ServerStreamingServer[pb.StreamMessage], name string, m store.Message) error {
	return stream.Send(&pb.StreamMessage{
		MessageId:                m.ID,
		Stream:                   name,
		OriginatingTimeUnixNanos: m.OriginatingTime.UnixNano(),
		Payload:                  m.Payload,
	})
}
// #endregion subscribe
