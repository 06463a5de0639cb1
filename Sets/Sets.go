package Sets

// Set is a collection of distinct elements.
// Receivers returning a bool report whether the call changed the set, so
// Put of a present element and Remove of an absent one both return false.
type Set[E any] interface {
	//Put E into the set. Returns true if E wasn't already present.
	Put(E) bool
	//Has E in the set.
	Has(E) bool
	//Remove E from the set. Returns true if E was present.
	Remove(E) bool
	//Size of the set.
	Size() uint
	//Take some element from the set, the zero value of E if the set is
	//empty. Implementations choose which element; use it when any one
	//will do.
	Take() E
	//Range over the elements, calling f on each until f returns false.
	//The set must not be modified during the walk.
	Range(func(E) bool)
}

// Sorted is a Set that keeps its elements in ascending order. Range on a
// Sorted set visits the elements in that order.
type Sorted[E any] interface {
	Set[E]
	//Minimum element of the set. The bool is false when the set is empty,
	//in which case the element is undefined.
	Minimum() (E, bool)
	//Maximum element of the set.
	Maximum() (E, bool)
	//RangeR is Range in descending order.
	RangeR(func(E) bool)
}
