/*
Package registry provides handler namespaces.

A namespace binds handler names to functions. The codecs consult it while
decoding a menu document to turn each choice's handler attribute back into an
invocable domain.Handler. The literal "None" always resolves to no handler;
any other unknown name is a *domain.NameResolutionError.
*/
package registry
