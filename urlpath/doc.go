/*
Package urlpath splits a URL path into its non-empty segments and
exposes sequential, resettable consumption of them through a [Cursor].

A Cursor tolerates leading, trailing, and repeated separators:
"/users//42/" and "users/42" both yield the segments ["users", "42"].
The canonical string form of a Cursor is one separator followed by the
segments joined by the separator, so two Cursors built from equivalent
segment sequences stringify identically.
*/
package urlpath
