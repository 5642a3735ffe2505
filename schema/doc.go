// Package schema holds the per tag attribute lists of the TMX format and the
// defaults the format defines for attributes a document leaves out.
//
// Attributes gives, for a tag, the ordered list of attribute names and value
// types an element is scanned for.  The schema of a tile element depends on
// its parent: under a layer it has only an id, under a tileset an id and a
// probability, and elsewhere nothing.
//
// Default resolves in this order:
//
//  1. layer, imagelayer and objectgroup default x and y to 0; a layer also
//     inherits width and height from the map node when one is given and it
//     defines them.
//  2. object defaults width and height to 0.
//  3. any tag defaults opacity and visible to 1 and offsetx and offsety to 0.
//
// Anything else has no default.
package schema
