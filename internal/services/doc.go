// Package services contains the application services of the client. The
// central one is the session service: the owner of the authentication state
// machine and the only writer of the session snapshot.
package services
