// Package addon layers the optional router add-on onto a materialized
// project: the add-on tree is copied under src/router unfiltered and
// src/main.tsx is replaced wholesale with an entry point that renders the
// router. A missing add-on tree is a warning, never a failure.
package addon
