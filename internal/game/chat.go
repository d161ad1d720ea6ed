package game

import "sync"

// Message is one entry of the global chat feed.
type Message struct {
	User    string
	Badge   string
	Content string
	Time    string
}

// ChatRoom is the local, in-memory global chat. There is no messaging
// transport behind it: posted messages live only for the current process.
type ChatRoom struct {
	mu       sync.Mutex
	messages []Message
}

// NewChatRoom returns a room pre-filled with the sample feed.
func NewChatRoom() *ChatRoom {
	return &ChatRoom{messages: []Message{
		{User: "AirlineKing47", Badge: "premium", Time: "2 min ago",
			Content: "Just opened a new route from Miami to Barcelona! Anyone have experience with European operations?"},
		{User: "SkyHighCEO", Badge: "alliance", Time: "5 min ago",
			Content: "The A350 fuel numbers are unreal. Worth every penny."},
		{User: "CloudNine", Badge: "", Time: "11 min ago",
			Content: "Anyone else seeing low load factors on transatlantic this week?"},
	}}
}

// Post appends a message from user to the feed.
func (r *ChatRoom) Post(user, content string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, Message{User: user, Content: content, Time: "now"})
}

// Messages returns a copy of the feed in posting order.
func (r *ChatRoom) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}
