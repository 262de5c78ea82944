package database

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
	"strings"
)

var digits = parsly.NewToken(1, "digits", matcher.NewDigits())

var separator = parsly.NewToken(2, "separator", matcher.NewCharset(".:-"))

//ParseVersion parses version query result, i.e. "PostgreSQL 9.3.10 on x86_64" or "3.39.2"
func ParseVersion(input []byte) (*Product, error) {
	cursor := parsly.NewCursor("", input, 0)
	result := &Product{}
	if err := matchMajor(cursor, result); err != nil {
		return nil, err
	}
	if matched := cursor.MatchOne(separator); matched.Code != separator.Code {
		//leading number was a product year, i.e. Microsoft SQL Server 2019 (RTM) - 15.0.2000.5
		cursor.Pos++
		if err := matchMajor(cursor, result); err != nil {
			return result, nil
		}
		if matched = cursor.MatchOne(separator); matched.Code != separator.Code {
			return result, nil
		}
	}
	matched := cursor.MatchOne(digits)
	minor, _ := matched.Int(cursor)
	result.Minor = int(minor)
	if matched = cursor.MatchOne(separator); matched.Code != separator.Code {
		return result, nil
	}
	matched = cursor.MatchOne(digits)
	release, _ := matched.Int(cursor)
	result.Release = int(release)
	return result, nil
}

func matchMajor(cursor *parsly.Cursor, product *Product) error {
	matched := cursor.FindMatch(digits)
	if matched.Code != digits.Code {
		return cursor.NewError(digits)
	}
	if matched.Offset > 0 {
		product.Name = strings.Trim(string(cursor.Input[:matched.Offset-1]), " -\t\n")
	}
	major, _ := matched.Int(cursor)
	product.Major = int(major)
	return nil
}
