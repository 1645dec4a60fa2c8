// Package rustup discovers the targets rustup-init is published for by
// scanning the list of object-storage paths kept in the rustup repository.
package rustup
