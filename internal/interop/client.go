package interop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	pb "github.com/hciworks/interaction-core/gen/interop"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #region types
// RemoteStream describes one stream on a remote store.
type RemoteStream struct {
	ID   int64
	Name string
	Type string
}

// Event is one message received from a remote stream.
type Event struct {
	MessageID       int64
	Stream          string
	OriginatingTime time.Time
	Payload         []byte
}
// #endregion types

// #region client-struct
// Client wraps the gRPC connection to a remoting server.
type Client struct {
	conn   *grpc.ClientConn
	client pb.RemotingClient
}
// #endregion client-struct

// #region constructor
// NewClient connects to a remoting gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewRemotingClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service implementation.
// Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.RemotingClient) *Client {
	return &Client{client: svc}
}
// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
// #endregion close

// #region list-streams
// ListStreams enumerates the streams the remote store holds.
func (c *Client) ListStreams(ctx context.Context) ([]RemoteStream, error) {
	resp, err := c.client.ListStreams(ctx, &pb.ListStreamsRequest{})
	if err != nil {
		return nil, fmt.Errorf("list streams rpc: %w", err)
	}
	streams := make([]RemoteStream, 0, len(resp.Streams))
	for _, si := range resp.Streams {
		streams = append(streams, RemoteStream{
			ID:   si.StreamId,
			Name: si.Name,
			Type: si.Type,
		})
	}
	return streams, nil
}
// #endregion list-streams

// #region publish
// Publish sends one message into a named remote stream, creating the
// stream if needed.
func (c *Client) Publish(ctx context.Context, stream, typ string, originatingTime time.Time, payload []byte) (int64, error) {
	resp, err := c.client.Publish(ctx, &pb.PublishRequest{
		Stream:                   stream,
		Type:                     typ,
		OriginatingTimeUnixNanos: originatingTime.UnixNano(),
		Payload:                  payload,
	})
	if err != nil {
		return 0, fmt.Errorf("publish rpc: %w", err)
	}
	return resp.MessageId, nil
}
// #endregion publish

// #region subscribe
// Subscribe streams a remote stream's messages with originating time at or
// after from, invoking fn per message until the server closes the stream,
// the context is cancelled, or fn returns an error.
func (c *Client) Subscribe(ctx context.Context, stream string, from time.Time, fn func(Event) error) error {
	sub, err := c.client.Subscribe(ctx, &pb.SubscribeRequest{
		Stream:        stream,
		FromUnixNanos: from.UnixNano(),
	})
	if err != nil {
		return fmt.Errorf("subscribe rpc: %w", err)
	}

	for {
		msg, err := sub.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("subscribe recv: %w", err)
		}
		ev := Event{
			MessageID:       msg.MessageId,
			Stream:          msg.Stream,
			OriginatingTime: time.Unix(0, msg.OriginatingTimeUnixNanos).UTC(),
			Payload:         msg.Payload,
		}
		if err := fn(ev); err != nil {
			return err
		}
	}
}
// #endregion subscribe
