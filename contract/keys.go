package contract

import (
	"strconv"

	"fundvote/kv"
)

// The contract's key space is closed: every storage location is minted by
// one of these constructors, so the encoding below is the complete schema.
//
//	instance  admin          stored admin address
//	instance  active         voting active flag
//	instance  total_votes    vote counter / next free record index
//	archival  option/<id>    Option record
//	archival  vote_count/<id>    per-option vote count
//	archival  total_funds/<id>   per-option funds total
//	archival  vote/<index>   VoteRecord at append index
//	archival  voter/<addr>   option id the voter chose
//	archival  option_ids     sorted registry of known option ids

func adminKey() kv.Key {
	return kv.Key{Scope: kv.Instance, Name: "admin"}
}

func activeKey() kv.Key {
	return kv.Key{Scope: kv.Instance, Name: "active"}
}

func totalVotesKey() kv.Key {
	return kv.Key{Scope: kv.Instance, Name: "total_votes"}
}

func optionKey(id uint32) kv.Key {
	return kv.Key{Scope: kv.Archival, Name: "option/" + strconv.FormatUint(uint64(id), 10)}
}

func voteCountKey(id uint32) kv.Key {
	return kv.Key{Scope: kv.Archival, Name: "vote_count/" + strconv.FormatUint(uint64(id), 10)}
}

func totalFundsKey(id uint32) kv.Key {
	return kv.Key{Scope: kv.Archival, Name: "total_funds/" + strconv.FormatUint(uint64(id), 10)}
}

func voteRecordKey(index uint32) kv.Key {
	return kv.Key{Scope: kv.Archival, Name: "vote/" + strconv.FormatUint(uint64(index), 10)}
}

func voterRecordKey(voter string) kv.Key {
	return kv.Key{Scope: kv.Archival, Name: "voter/" + voter}
}

func optionIDsKey() kv.Key {
	return kv.Key{Scope: kv.Archival, Name: "option_ids"}
}
