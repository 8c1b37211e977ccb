// Package broadcast provides type-safe, in-memory fan-out of values to
// multiple subscribers.
//
// Every broadcast message carries a sequence number assigned by the
// broadcaster, which lets subscribers detect gaps. Slow subscribers are
// dropped instead of blocking the publisher.
//
// Basic usage:
//
//	b := broadcast.NewMemoryBroadcaster[string](10, broadcast.WithReplayLast())
//	defer b.Close()
//
//	ctx := context.Background()
//	sub := b.Subscribe(ctx)
//	defer sub.Close()
//
//	_, _ = b.Broadcast(ctx, "hello")
//
//	for msg := range sub.Receive(ctx) {
//		fmt.Println(msg.Seq, msg.Data)
//	}
//
// The memory implementation removes a subscriber when:
//   - the subscriber's context is cancelled
//   - the subscriber's buffer is full, unless WithDropOldest is set
//   - the broadcaster is closed
//
// With WithDropOldest a full subscriber loses its oldest pending message
// instead, which suits state feeds where only the latest value matters.
package broadcast
