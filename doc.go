// packet parser and ordering (distress signal format)
//
// a packet is a single line of text holding either a non-negative decimal
// integer or a bracketed, comma separated list of packets. whitespace is
// not permitted anywhere in the serialized form.
//
// examples:
//
//   [1,1,3,1,1]
//   [[1],[2,3,4]]
//   [1,[2,[3,[4,[5,6,7]]]],8,9]
//   []
//
// BNF:
//  <item>      :: "[" <list> "]" | <integer> ;
//  <list>      :: <item> <list-tail> | "" ;
//  <list-tail> :: "," <item> <list-tail> | "" ;
//  <integer>   :: <digit>+ ;
//  <digit>     :: "0" | ... | "9" ;
//
// ordering:
//
//   two integers compare numerically.
//   two lists compare element by element; the first element pair that is
//   not equal decides. if one list runs out first it is the lesser one.
//   an integer compared against a list is first wrapped in a one element
//   list.

package packet
