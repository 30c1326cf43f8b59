/*
Package observability exports presentation progress as Prometheus metrics.

Metrics plugs into the runner through lifecycle hooks: it counts slides and
failed actions, times each slide and tracks the slide currently on screen.
*/
package observability
