package twilioclient

import (
	"fmt"

	twjwt "github.com/twilio/twilio-go/client/jwt"
)

// VideoToken issues an access token letting identity join room.
func (c *Client) VideoToken(identity, room string) (string, error) {
	token := c.accessToken(identity)
	token.AddGrant(&twjwt.VideoGrant{Room: room})
	signed, err := token.ToJwt()
	if err != nil {
		return "", fmt.Errorf("sign video token: %w", err)
	}
	return signed, nil
}

// ChatToken issues an access token for the configured conversations service.
func (c *Client) ChatToken(identity string) (string, error) {
	token := c.accessToken(identity)
	token.AddGrant(&twjwt.ChatGrant{ServiceSid: c.chatServiceSID})
	signed, err := token.ToJwt()
	if err != nil {
		return "", fmt.Errorf("sign chat token: %w", err)
	}
	return signed, nil
}

func (c *Client) accessToken(identity string) *twjwt.AccessToken {
	t := twjwt.CreateAccessToken(twjwt.AccessTokenParams{
		AccountSid:    c.accountSID,
		SigningKeySid: c.apiKey,
		Secret:        c.apiSecret,
		Identity:      identity,
		Ttl:           c.tokenTTL.Seconds(),
	})
	return &t
}
