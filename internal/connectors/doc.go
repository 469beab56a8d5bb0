// Package connectors holds the implementations of driven.RepositorySource.
// Each subpackage talks to one hosting service; github is the only one.
package connectors
