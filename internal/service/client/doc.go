// Package client implements the catpoint-ctl operations.
//
// Every operation connects to the catpoint server, performs one request on
// behalf of the detected system actor and prints the result.
package client
