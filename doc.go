/*
Package geopack implements a compact binary object model for
geographic entities (points, tracks, circles, areas). Entities travel
as self-describing big-endian blobs that remain readable across schema
versions: newer writers may append fields, older readers skip what
they do not know.

Data Structure Documentation

Object

Every persisted object is framed by its schema version and the byte
size of its body. Readers bound decoding to the declared size and skip
any unread tail, which is the forward-compatibility seam.

	Object layout:
	+-------------------+----------------+-------------------+
	| version (4 bytes) | size (4 bytes) | body (size bytes) |
	+-------------------+----------------+-------------------+

Strings and byte arrays are length-prefixed, booleans are single
bytes, optional nested objects are framed by a single presence byte
(0 = absent, 1 = present followed by the object).

Entity

Every entity encoding starts with the shared prefix below, concrete
types append their own fields after it.

	Entity prefix:
	+--------------+---------------------+----------------------+----------------+
	| id (8 bytes) | name (len-prefixed) | timeCreated (8 bytes)| state (1 byte) |
	+--------------+---------------------+----------------------+----------------+
	+--------------------+----------------------+-------------------------+
	| attributes? (1+..) | styleNormal? (1+..)  | styleHighlight? (1+..)  |
	+--------------------+----------------------+-------------------------+

Attributes

The attribute container body is a sequence of identifier/value
entries. Identifiers below 1000 are scalar, the 1000-1999 range holds
repeatable categories (contacts, attachments).

	Attributes body:
	+-----------------+--------------+---------------------+-------+
	| count (4 bytes) | id (4 bytes) | value (len-prefixed)|  ...  |
	+-----------------+--------------+---------------------+-------+

Pack

A pack is the transport envelope for a batch of entities: a count
followed by the framed elements, then a single-byte compression tag.
The payload is snappy-compressed when that saves space.

	Pack layout:
	+-----------------+----------+---------+----------+---------------------------+
	| count (4 bytes) | object 1 |   ...   | object n | compression type (1-byte) |
	+-----------------+----------+---------+----------+---------------------------+
*/
package geopack
