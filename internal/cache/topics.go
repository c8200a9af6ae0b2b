package cache

import "context"

// Invalidation topics. Mutation services publish these after every write so
// any cached view of the affected entity kind is dropped and presentation
// consumers listening on the invalidation channel can refetch.
const (
	TopicClientsList  = "clients:list"
	TopicProjectsList = "projects:list"
	TopicInvoicesList = "invoices:list"
	TopicDashboard    = "dashboard"

	// InvalidationChannel is the Redis pub/sub channel topics are announced on.
	InvalidationChannel = "invalidations"
)

// TopicProjectDetail names the cached detail view of one project.
func TopicProjectDetail(id string) string {
	return "project:" + id
}

// TopicInvoiceDetail names the cached detail view of one invoice.
func TopicInvoiceDetail(id string) string {
	return "invoice:" + id
}

// TopicUser names the cached record of one user.
func TopicUser(id string) string {
	return "user:" + id
}

// Invalidate drops the cached value for each topic and announces the topic on
// the invalidation channel. Best effort, same fail-safe posture as the rest
// of the client.
func (c *Client) Invalidate(ctx context.Context, topics ...string) {
	if c == nil || c.client == nil {
		return
	}
	for _, topic := range topics {
		_ = c.Delete(ctx, topic)
		_ = c.client.Publish(ctx, InvalidationChannel, topic).Err()
	}
}
