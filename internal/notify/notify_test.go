package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/skolyn/backend/internal/model"
)

type fakePublisher struct {
	channel string
	message []byte
	err     error
}

func (f *fakePublisher) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	f.channel = channel
	f.message, _ = message.([]byte)
	cmd := redis.NewIntCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
	} else {
		cmd.SetVal(1)
	}
	return cmd
}

func TestRedisNotifier_PublishesJSON(t *testing.T) {
	pub := &fakePublisher{}
	n := NewRedisNotifier(pub, "")

	req := &model.DemoRequest{Name: "Ada", Email: "ada@example.com", ReceivedAt: time.Now().UTC()}
	if err := n.NotifyDemoRequest(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pub.channel != DefaultChannel {
		t.Errorf("expected channel %q, got %q", DefaultChannel, pub.channel)
	}
	var got model.DemoRequest
	if err := json.Unmarshal(pub.message, &got); err != nil {
		t.Fatalf("published message is not JSON: %v", err)
	}
	if got.Email != "ada@example.com" || got.Name != "Ada" {
		t.Errorf("unexpected payload: %+v", got)
	}
}

func TestRedisNotifier_CustomChannel(t *testing.T) {
	pub := &fakePublisher{}
	n := NewRedisNotifier(pub, "sales")

	if err := n.NotifyDemoRequest(context.Background(), &model.DemoRequest{Name: "a", Email: "a@b.co"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pub.channel != "sales" {
		t.Errorf("expected channel sales, got %q", pub.channel)
	}
}

func TestRedisNotifier_PublishError(t *testing.T) {
	pub := &fakePublisher{err: errors.New("connection refused")}
	n := NewRedisNotifier(pub, "")

	err := n.NotifyDemoRequest(context.Background(), &model.DemoRequest{Name: "a", Email: "a@b.co"})
	if err == nil {
		t.Fatal("expected publish error")
	}
}

func TestLogNotifier_NeverFails(t *testing.T) {
	n := NewLogNotifier()
	if err := n.NotifyDemoRequest(context.Background(), &model.DemoRequest{Name: "a", Email: "a@b.co"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
