package openaddr

/*
	This hash map implementation uses a closed hashing (open addressing) technique with
	plain linear probing for resolving hash collisions, and tombstones for deletion.

	The basic principal is:
	-----------------------
	1) Calculate the hash value of the key and take it modulo the capacity; this is
	   the home bucket
	2) Search the table linearly from the home bucket, wrapping around at the end,
	   visiting every bucket at most once
	3) Stop at the first bucket that was never used, or that holds a live entry with
	   the same key. A never used bucket is where a new key goes; it also proves a
	   lookup key is absent
	4) A deleted bucket is not cleared. It is marked as a tombstone and keeps its
	   place, otherwise keys stored past it in the same probe run would become
	   unreachable. Tombstones never match, even on their own key
	5) Before an insertion, (live + tombstones + 1) / capacity is compared against the
	   max load ratio. If it would exceed it, the table grows by the growth factor and
	   every live entry is reinserted into the new table. This rebuild is the only
	   place tombstones are reclaimed; there is no shrinking

	Keeping the max load ratio below 1 means every insertion leaves at least one never
	used bucket behind, so step 2 always terminates early.
*/
