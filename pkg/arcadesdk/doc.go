/*
Package arcadesdk is a Go client for the arcade game backend.

# Client and Session

A Client talks to the public endpoints and creates sessions:

	client := arcadesdk.NewClient("https://arcade.example.com")

	health, err := client.GetLiveness(ctx)

	reg, err := client.Register(ctx, "alice", "hunter2")

	session, err := client.Login(ctx, "alice", "hunter2")

A Session carries the bearer token returned by login and calls the
per-player endpoints:

	res, err := session.SubmitScore(ctx, 3, 1200)
	if res.Accepted {
		fmt.Println("new best:", res.BestScore)
	}

	scores, err := session.Scores(ctx) // level -> best score

Sessions do not refresh. Once Expired reports true, log in again.

# Errors

Non-2xx responses are returned as *APIError, whose Code is one of the
ErrorCode constants:

	_, err := client.Register(ctx, "alice", "pw")
	var apiErr *arcadesdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == arcadesdk.ErrorCodeUsernameTaken {
		// pick another name
	}

The predefined errors (ErrUsernameTaken, ErrInvalidSession, ...) match with
errors.Is on the code alone.

# Thread Safety

Clients and Sessions are safe for concurrent use.
*/
package arcadesdk
