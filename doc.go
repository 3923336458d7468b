// Package celltui computes terminal-cell geometry for a tree of UI
// nodes.
//
// Users import this single package for the complete public API: the
// node arena, style configuration, and the layout entry points. The
// engine itself lives in internal/layout and is re-exported here.
package celltui
