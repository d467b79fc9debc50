/*
Package observability provides tools for monitoring menu navigation.

It turns engine lifecycle hooks into structured log lines and Prometheus
metrics, and wraps registry handlers to measure their duration.
*/
package observability
