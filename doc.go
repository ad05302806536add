// Package texmath converts between LaTeX math notation and expression trees.
//
// Conversion runs in stages, each usable on its own. Tokenize scans source
// text into tokens. Parse reads tokens into a parse tree following a
// recursive descent grammar, and BuildTree turns that into an expression
// tree of Nodes with left-associative operator chains. ParseTree does all
// three. In the other direction, Compose turns an expression tree into
// tokens with only the brackets needed to parse back into the same tree, and
// Write produces text from tokens. Render and Format combine these.
//
// The syntax is the math subset of LaTeX: numbers, single letters, Greek
// letters, \text{...}, relations such as = and \leq, the operators + - \pm
// \mp \times \cdot * / \bmod \over ^ _ and !, brackets, \frac, \binom,
// \sqrt, named functions such as \sin and \lim, and big operators such as
// \sum and \int. Juxtaposition is multiplication, so "2x" is the same as
// "2\cdot x".
//
// No stage evaluates or simplifies expressions. Every stage stops at the
// first error. Parsing recurses once per level of bracket or function
// nesting, so extremely deep nesting can exhaust the stack.
package texmath
