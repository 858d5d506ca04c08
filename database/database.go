package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"table-booking-webapp/model"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")

// Catalog is the read-only list of restaurants the confirmation dialog can be
// opened for. It is loaded once and never written back.
type Catalog struct {
	restaurants map[string]model.Restaurant
	ordered     []model.Restaurant
}

func NewCatalog(restaurants []model.Restaurant) (*Catalog, error) {
	catalog := &Catalog{restaurants: make(map[string]model.Restaurant, len(restaurants))}
	for _, restaurant := range restaurants {
		restaurant.Id = strings.TrimSpace(restaurant.Id)
		if restaurant.Id == "" {
			return nil, fmt.Errorf("restaurant %q has no id", restaurant.Name)
		}
		if _, exists := catalog.restaurants[restaurant.Id]; exists {
			return nil, fmt.Errorf("duplicate restaurant id %v", restaurant.Id)
		}
		catalog.restaurants[restaurant.Id] = restaurant
		catalog.ordered = append(catalog.ordered, restaurant)
	}
	return catalog, nil
}

// ReadCatalog loads a JSON array of restaurants from path.
func ReadCatalog(path string) (*Catalog, error) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read restaurant catalog: %w", err)
	}

	restaurants := []model.Restaurant{}
	if err = json.Unmarshal(fileBytes, &restaurants); err != nil {
		return nil, fmt.Errorf("decode restaurant catalog %v: %w", path, err)
	}

	return NewCatalog(restaurants)
}

func (c *Catalog) GetRestaurant(id string) (model.Restaurant, error) {
	restaurant, ok := c.restaurants[id]
	if !ok {
		return model.Restaurant{}, fmt.Errorf("no restaurant with id %v: %w", id, ErrRestaurantNotFound)
	}
	return restaurant, nil
}

// GetRestaurants returns every restaurant in catalog file order.
func (c *Catalog) GetRestaurants() []model.Restaurant {
	restaurants := make([]model.Restaurant, len(c.ordered))
	copy(restaurants, c.ordered)
	return restaurants
}

func (c *Catalog) Len() int {
	return len(c.restaurants)
}
