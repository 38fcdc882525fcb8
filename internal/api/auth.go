package api

// Login exchanges operator credentials for a bearer token. On success
// the client's session is authenticated with the new token.
func (c *Client) Login(email, password string) (*LoginResponse, error) {
	data, err := c.post("/api/auth/login", LoginInput{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	resp, err := decodeOne[LoginResponse](data)
	if err != nil {
		return nil, err
	}
	c.session.Authenticate(resp.Token)
	return resp, nil
}
