/*
Package element defines the element tree produced by the shorthand parser.

Overview

An element tree is a small, finite tree of element nodes. Every node carries
a tag name and optional decorations: an id, an ordered list of class names
and a literal text. Shorthand strings describing more than one top-level
element, e.g. "header+main", are represented by a root marker node holding
the top-level siblings. A shorthand string describing a single top-level
element is represented by that element alone, without a root marker.
Clients therefore have to be prepared for both shapes; function Tops
normalizes them.

Trees are built by package shorthand and are not modified afterwards.
This package provides helpers to inspect them: walking, collecting class
names and dumping a tree for debugging (ASCII, YAML and GraphViz DOT).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package element
