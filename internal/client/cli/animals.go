package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/littlerefugees/refugio-cli/internal/client/models"
	"github.com/littlerefugees/refugio-cli/internal/client/services"
	"github.com/littlerefugees/refugio-cli/internal/client/validate"
)

// Animals lists the public catalog. Optional args narrow the listing:
//
//	animals [search] [species=dog,cat] [page=N]
func (a *App) Animals(ctx context.Context, args []string) error {
	q := services.AnimalsQuery{Limit: 20}
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "species="):
			q.Species = strings.Split(strings.TrimPrefix(arg, "species="), ",")
		case strings.HasPrefix(arg, "page="):
			if n, err := strconv.Atoi(strings.TrimPrefix(arg, "page=")); err == nil {
				q.Page = n
			}
		default:
			q.Search = arg
		}
	}

	animals, err := a.animals.List(ctx, q)
	if err != nil {
		return err
	}
	if len(animals) == 0 {
		printlnFn("No animals found.")
		return nil
	}

	for _, animal := range animals {
		printlnFn(formatAnimalLine(animal))
	}
	return nil
}

// AnimalDetail shows one animal with its shelter and photos.
func (a *App) AnimalDetail(ctx context.Context, args []string) error {
	id, err := parseIDArg(args, "animal <id>")
	if err != nil {
		return err
	}

	animal, err := a.animals.Detail(ctx, id)
	if err != nil {
		return err
	}

	printlnFn(formatAnimalLine(*animal))
	if animal.Description != nil && *animal.Description != "" {
		printlnFn(*animal.Description)
	}
	if animal.Adopted {
		printlnFn("Already adopted.")
	}
	if animal.Shelter != nil {
		printlnFn(fmt.Sprintf("Shelter: %s <%s> %s", animal.Shelter.Name, animal.Shelter.Email, animal.Shelter.Address))
	}
	for _, photo := range animal.Photos {
		printlnFn("photo: " + photo.URL)
	}
	return nil
}

// Adopt submits an adoption request for an animal.
func (a *App) Adopt(ctx context.Context, args []string) error {
	id, err := parseIDArg(args, "adopt <id>")
	if err != nil {
		return err
	}

	message, err := GetMultiline(a.reader, "Tell the shelter about yourself", os.Stdout)
	if err != nil {
		return err
	}
	if err := validate.Message(message); err != nil {
		return err
	}

	if err := a.animals.RequestAdoption(ctx, id, message); err != nil {
		return err
	}
	a.notifier.Success("", "Adoption request sent.")
	return nil
}

// MyRequests lists the caller's adoption requests, optionally filtered:
//
//	myrequests [pending|approved|rejected]
func (a *App) MyRequests(ctx context.Context, args []string) error {
	q := services.MyRequestsQuery{OrderBy: "createdAt", Direction: services.Desc}
	if len(args) > 0 {
		q.Statuses = []models.AdoptionStatus{models.AdoptionStatus(strings.ToUpper(args[0]))}
	}

	requests, err := a.adoptions.MyRequests(ctx, q)
	if err != nil {
		return err
	}
	if len(requests) == 0 {
		printlnFn("No adoption requests.")
		return nil
	}

	for _, r := range requests {
		name := "?"
		if r.Animal != nil {
			name = r.Animal.Name
		}
		printlnFn(fmt.Sprintf("#%d %-9s %s (%s)", r.ID, r.Status, name, r.CreatedAt))
	}
	return nil
}

func formatAnimalLine(animal models.Animal) string {
	age := "?"
	if animal.Age != nil {
		age = strconv.Itoa(*animal.Age)
	}
	return fmt.Sprintf("#%d %s (%s, %s, %s, age %s)",
		animal.ID, animal.Name, animal.Species, animal.Breed, animal.Gender, age)
}

func parseIDArg(args []string, usage string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a numeric id: %q", args[0])
	}
	return id, nil
}
