package models

import "fmt"

// Item is a single inventory entry. SellIn and Quality are mutated in place once per day.
type Item struct {
	ID      string `bson:"_id" json:"id"`
	Name    string `bson:"name" json:"name"`
	SellIn  int    `bson:"sell_in" json:"sell_in"`
	Quality int    `bson:"quality" json:"quality"`
}

// NewItem builds an item without validating any of its fields.
func NewItem(name string, sellIn, quality int) Item {
	return Item{Name: name, SellIn: sellIn, Quality: quality}
}

func (i Item) String() string {
	return fmt.Sprintf("%s, %d, %d", i.Name, i.SellIn, i.Quality)
}
