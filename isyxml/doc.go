// Package isyxml parses the ISY hub's REST XML payloads into normalized
// entity records.
//
// Three payload shapes are handled:
//
//   - node lists (/rest/nodes): <node>, <group>, and <folder> elements
//   - program lists (/rest/programs?subfolders=true): <program> elements,
//     folder entries flagged with folder="true"
//   - command acknowledgements: <RestResponse succeeded=".."/>
//
// Parsing is strict about structure and permissive about vocabulary:
// a record without an address fails the whole payload with ErrParse, but
// unrecognized status values are retained as raw strings because the hub's
// status vocabulary is not fully enumerable. Fields without a dedicated
// Entity slot are kept in the entity's open Properties map.
//
// The package has no side effects: it never touches the registry or the
// network.
package isyxml
