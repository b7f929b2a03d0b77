package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/smerlos/convoset/server/data"
	"github.com/smerlos/convoset/turn"
)

func (c *Client) CreateConversation(title, domain string) (*turn.Conversation, error) {
	var result map[string]string
	body := map[string]string{"title": title, "domain": domain}
	if err := c.doRequest(http.MethodPost, "/conversations", body, &result); err != nil {
		return nil, err
	}

	return &turn.Conversation{
		ID:     result["id"],
		Title:  title,
		Domain: domain,
		Turns:  make([]*turn.Turn, 0),
	}, nil
}

func (c *Client) ListConversations() ([]data.ConversationMetadata, error) {
	var conversations []data.ConversationMetadata
	if err := c.doRequest(http.MethodGet, "/conversations", nil, &conversations); err != nil {
		return nil, err
	}

	return conversations, nil
}

func (c *Client) GetConversation(id string) (*turn.Conversation, error) {
	var conv turn.Conversation
	if err := c.doRequest(http.MethodGet, "/conversations/"+id, nil, &conv); err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			return nil, turn.ErrConversationNotFound
		}
		return nil, err
	}

	return &conv, nil
}

func (c *Client) SaveConversation(conv *turn.Conversation) error {
	path := fmt.Sprintf("/conversations/%s", conv.ID)
	if err := c.doRequest(http.MethodPut, path, conv, nil); err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			return turn.ErrConversationNotFound
		}
		return err
	}

	return nil
}

func (c *Client) DeleteConversation(id string) error {
	if err := c.doRequest(http.MethodDelete, "/conversations/"+id, nil, nil); err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			return turn.ErrConversationNotFound
		}
		return err
	}

	return nil
}
