package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/littlerefugees/refugio-cli/internal/client/models"
	"github.com/littlerefugees/refugio-cli/internal/client/services"
	"github.com/littlerefugees/refugio-cli/internal/client/validate"
)

const adminHelp = "admin subcommands: animals, animal <id>, add, edit <id>, rm <id>, " +
	"photos <id>, photo-add <id> <file...>, photo-rm <animal> <photo>, " +
	"adoptions, adoption <id>, approve <id>, reject <id>, request-rm <id>, reassign <from> <to>, " +
	"shelter, shelter-edit, admins, admin-add <email>, admin-rm <id>"

// Admin dispatches the administrative subcommands. Every branch first
// navigates into the corresponding admin route, so the route guard decides
// access in one place.
func (a *App) Admin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn(adminHelp)
		return nil
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "animals":
		if !a.enterAdmin("/admin/animals") {
			return nil
		}
		return a.adminAnimalList(ctx, rest)
	case "animal":
		if !a.enterAdmin("/admin/animals") {
			return nil
		}
		return a.adminAnimalShow(ctx, rest)
	case "add":
		if !a.enterAdmin("/admin/animals/create") {
			return nil
		}
		return a.adminAnimalAdd(ctx)
	case "edit":
		if !a.enterAdmin("/admin/animals") {
			return nil
		}
		return a.adminAnimalEdit(ctx, rest)
	case "rm":
		if !a.enterAdmin("/admin/animals") {
			return nil
		}
		return a.adminAnimalDelete(ctx, rest)
	case "photos":
		if !a.enterAdmin("/admin/animals") {
			return nil
		}
		return a.adminPhotoList(ctx, rest)
	case "photo-add":
		if !a.enterAdmin("/admin/animals") {
			return nil
		}
		return a.adminPhotoAdd(ctx, rest)
	case "photo-rm":
		if !a.enterAdmin("/admin/animals") {
			return nil
		}
		return a.adminPhotoDelete(ctx, rest)
	case "adoptions":
		if !a.enterAdmin("/admin/adoptions") {
			return nil
		}
		return a.adminAdoptionList(ctx, rest)
	case "adoption":
		if !a.enterAdmin("/admin/adoptions") {
			return nil
		}
		return a.adminAdoptionShow(ctx, rest)
	case "approve":
		if !a.enterAdmin("/admin/adoptions") {
			return nil
		}
		return a.adminAdoptionResolve(ctx, rest, models.AdoptionApproved)
	case "reject":
		if !a.enterAdmin("/admin/adoptions") {
			return nil
		}
		return a.adminAdoptionResolve(ctx, rest, models.AdoptionRejected)
	case "request-rm":
		if !a.enterAdmin("/admin/adoptions") {
			return nil
		}
		return a.adminAdoptionDelete(ctx, rest)
	case "reassign":
		if !a.enterAdmin("/admin/adoptions") {
			return nil
		}
		return a.adminReassign(ctx, rest)
	case "shelter":
		if !a.enterAdmin("/admin/shelter") {
			return nil
		}
		return a.adminShelterOverview(ctx)
	case "shelter-edit":
		if !a.enterAdmin("/admin/shelter/edit") {
			return nil
		}
		return a.adminShelterEdit(ctx)
	case "admins":
		if !a.enterAdmin("/admin/users") {
			return nil
		}
		return a.adminAdminList(ctx)
	case "admin-add":
		if !a.enterAdmin("/admin/users") {
			return nil
		}
		return a.adminAdminAdd(ctx, rest)
	case "admin-rm":
		if !a.enterAdmin("/admin/users") {
			return nil
		}
		return a.adminAdminRemove(ctx, rest)
	default:
		printlnFn("Unknown admin subcommand: " + sub)
		printlnFn(adminHelp)
		return nil
	}
}

// ---- animals ----

func (a *App) adminAnimalList(ctx context.Context, args []string) error {
	q := services.AdminAnimalsQuery{Limit: 20}
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "adopted="):
			v := strings.TrimPrefix(arg, "adopted=") == "true"
			q.Adopted = &v
		case strings.HasPrefix(arg, "page="):
			if n, err := strconv.Atoi(strings.TrimPrefix(arg, "page=")); err == nil {
				q.Page = n
			}
		default:
			q.Name = arg
		}
	}

	animals, err := a.adminAnimals.List(ctx, q)
	if err != nil {
		return err
	}
	if len(animals) == 0 {
		printlnFn("No animals.")
		return nil
	}
	for _, animal := range animals {
		line := formatAnimalLine(animal)
		if animal.Adopted {
			line += " [adopted]"
		}
		printlnFn(line)
	}
	return nil
}

func (a *App) adminAnimalShow(ctx context.Context, args []string) error {
	id, err := parseIDArg(args, "admin animal <id>")
	if err != nil {
		return err
	}
	animal, err := a.adminAnimals.Get(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(formatAnimalLine(*animal))
	for _, photo := range animal.Photos {
		printlnFn(fmt.Sprintf("photo #%d: %s", photo.ID, photo.URL))
	}
	return nil
}

// animalForm drives the interactive create/edit form. base carries the
// values shown as defaults when editing.
func (a *App) animalForm(base models.AnimalUpsert) (models.AnimalUpsert, error) {
	out := base

	var err error
	if out.Name, err = GetOptionalText(a.reader, "Name ["+base.Name+"]", base.Name, os.Stdout); err != nil {
		return out, err
	}
	if out.Species, err = GetOptionalText(a.reader, "Species ["+base.Species+"]", base.Species, os.Stdout); err != nil {
		return out, err
	}
	if out.Breed, err = GetOptionalText(a.reader, "Breed ["+base.Breed+"]", base.Breed, os.Stdout); err != nil {
		return out, err
	}
	if out.Gender, err = GetOptionalText(a.reader, "Gender ["+base.Gender+"]", base.Gender, os.Stdout); err != nil {
		return out, err
	}

	ageText, err := GetOptionalText(a.reader, "Age (empty if unknown)", "", os.Stdout)
	if err != nil {
		return out, err
	}
	if ageText != "" {
		age, err := strconv.Atoi(ageText)
		if err != nil {
			return out, fmt.Errorf("not a number: %q", ageText)
		}
		out.Age = &age
	}

	description, err := GetOptionalText(a.reader, "Description (optional)", "", os.Stdout)
	if err != nil {
		return out, err
	}
	if description != "" {
		out.Description = &description
	}

	adoptedText, err := GetOptionalText(a.reader, "Adopted? (y/N)", "n", os.Stdout)
	if err != nil {
		return out, err
	}
	out.Adopted = strings.EqualFold(adoptedText, "y")
	return out, nil
}

func (a *App) adminAnimalAdd(ctx context.Context) error {
	payload, err := a.animalForm(models.AnimalUpsert{})
	if err != nil {
		return err
	}

	animal, err := a.adminAnimals.Create(ctx, payload)
	if err != nil {
		return err
	}
	a.notifier.Success("", fmt.Sprintf("Animal #%d created.", animal.ID))
	return nil
}

func (a *App) adminAnimalEdit(ctx context.Context, args []string) error {
	id, err := parseIDArg(args, "admin edit <id>")
	if err != nil {
		return err
	}

	current, err := a.adminAnimals.Get(ctx, id)
	if err != nil {
		return err
	}

	payload, err := a.animalForm(models.AnimalUpsert{
		Name:        current.Name,
		Species:     current.Species,
		Breed:       current.Breed,
		Gender:      current.Gender,
		Age:         current.Age,
		Description: current.Description,
		Adopted:     current.Adopted,
	})
	if err != nil {
		return err
	}

	if _, err := a.adminAnimals.Update(ctx, id, payload); err != nil {
		return err
	}
	a.notifier.Success("", "Animal updated.")
	return nil
}

func (a *App) adminAnimalDelete(ctx context.Context, args []string) error {
	id, err := parseIDArg(args, "admin rm <id>")
	if err != nil {
		return err
	}
	if err := a.adminAnimals.Delete(ctx, id); err != nil {
		return err
	}
	a.notifier.Success("", "Animal removed.")
	return nil
}

// ---- photos ----

func (a *App) adminPhotoList(ctx context.Context, args []string) error {
	id, err := parseIDArg(args, "admin photos <id>")
	if err != nil {
		return err
	}
	photos, err := a.adminAnimals.Photos(ctx, id)
	if err != nil {
		return err
	}
	if len(photos) == 0 {
		printlnFn("No photos.")
		return nil
	}
	for _, photo := range photos {
		printlnFn(fmt.Sprintf("#%d %s", photo.ID, photo.URL))
	}
	return nil
}

func (a *App) adminPhotoAdd(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: admin photo-add <id> <file...>")
	}
	id, err := parseIDArg(args, "admin photo-add <id> <file...>")
	if err != nil {
		return err
	}

	var uploads []services.PhotoUpload
	var open []*os.File
	defer func() {
		for _, f := range open {
			f.Close()
		}
	}()
	for _, path := range args[1:] {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		open = append(open, f)
		uploads = append(uploads, services.PhotoUpload{Name: filepath.Base(path), Data: f})
	}

	photos, err := a.adminAnimals.UploadPhotos(ctx, id, uploads)
	if err != nil {
		return err
	}
	a.notifier.Success("", fmt.Sprintf("%d photo(s) uploaded.", len(photos)))
	return nil
}

func (a *App) adminPhotoDelete(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: admin photo-rm <animal> <photo>")
	}
	animalID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("not a numeric id: %q", args[0])
	}
	photoID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("not a numeric id: %q", args[1])
	}
	if err := a.adminAnimals.DeletePhoto(ctx, animalID, photoID); err != nil {
		return err
	}
	a.notifier.Success("", "Photo removed.")
	return nil
}

// ---- adoption requests ----

func (a *App) adminAdoptionList(ctx context.Context, args []string) error {
	q := services.AdminAdoptionsQuery{OrderBy: "createdAt", Direction: services.Desc, Limit: 20}
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "status="):
			q.Statuses = []models.AdoptionStatus{models.AdoptionStatus(strings.ToUpper(strings.TrimPrefix(arg, "status=")))}
		case strings.HasPrefix(arg, "animal="):
			q.AnimalName = strings.TrimPrefix(arg, "animal=")
		case strings.HasPrefix(arg, "user="):
			q.UserName = strings.TrimPrefix(arg, "user=")
		case strings.HasPrefix(arg, "page="):
			if n, err := strconv.Atoi(strings.TrimPrefix(arg, "page=")); err == nil {
				q.Page = n
			}
		}
	}

	requests, err := a.adminRequests.List(ctx, q)
	if err != nil {
		return err
	}
	if len(requests) == 0 {
		printlnFn("No adoption requests.")
		return nil
	}
	for _, r := range requests {
		animal, user := "?", "?"
		if r.Animal != nil {
			animal = r.Animal.Name
		}
		if r.User != nil {
			user = r.User.FullName
		}
		printlnFn(fmt.Sprintf("#%d %-9s %s from %s (%s)", r.ID, r.Status, animal, user, r.CreatedAt))
	}
	return nil
}

func (a *App) adminAdoptionShow(ctx context.Context, args []string) error {
	id, err := parseIDArg(args, "admin adoption <id>")
	if err != nil {
		return err
	}
	r, err := a.adminRequests.Get(ctx, id)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("#%d %s (%s)", r.ID, r.Status, r.CreatedAt))
	if r.User != nil {
		printlnFn(fmt.Sprintf("From: %s <%s>", r.User.FullName, r.User.Email))
	}
	if r.Animal != nil {
		printlnFn("Animal: " + formatAnimalLine(*r.Animal))
	}
	printlnFn("Message: " + r.Message)
	return nil
}

func (a *App) adminAdoptionResolve(ctx context.Context, args []string, status models.AdoptionStatus) error {
	id, err := parseIDArg(args, "admin approve|reject <id>")
	if err != nil {
		return err
	}
	if err := a.adminRequests.SetStatus(ctx, id, status); err != nil {
		return err
	}
	a.notifier.Success("", fmt.Sprintf("Request #%d %s.", id, strings.ToLower(string(status))))
	return nil
}

func (a *App) adminAdoptionDelete(ctx context.Context, args []string) error {
	id, err := parseIDArg(args, "admin request-rm <id>")
	if err != nil {
		return err
	}
	if err := a.adminRequests.Delete(ctx, id); err != nil {
		return err
	}
	a.notifier.Success("", "Request removed.")
	return nil
}

func (a *App) adminReassign(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: admin reassign <from-admin> <to-admin>")
	}
	from, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("not a numeric id: %q", args[0])
	}
	to, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("not a numeric id: %q", args[1])
	}
	if err := a.adminRequests.Reassign(ctx, from, to); err != nil {
		return err
	}
	a.notifier.Success("", "Requests reassigned.")
	return nil
}

// ---- shelter ----

func (a *App) adminShelterOverview(ctx context.Context) error {
	overview, err := a.shelters.MyOverview(ctx)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("%s <%s>", overview.Name, overview.Email))
	printlnFn(overview.Address)
	if overview.Phone != nil && *overview.Phone != "" {
		printlnFn("Phone: " + *overview.Phone)
	}
	printlnFn(fmt.Sprintf("%d animals, %d admins", overview.AnimalsCount, overview.AdminsCount))
	owner := ""
	if overview.CurrentAdmin.IsAdminOwner {
		owner = " (owner)"
	}
	printlnFn(fmt.Sprintf("You: %s%s", overview.CurrentAdmin.FullName, owner))
	return nil
}

func (a *App) adminShelterEdit(ctx context.Context) error {
	overview, err := a.shelters.MyOverview(ctx)
	if err != nil {
		return err
	}

	payload := models.ShelterCreate{Phone: overview.Phone, Description: overview.Description}
	if payload.Name, err = GetOptionalText(a.reader, "Name ["+overview.Name+"]", overview.Name, os.Stdout); err != nil {
		return err
	}
	if payload.Email, err = GetOptionalText(a.reader, "Email ["+overview.Email+"]", overview.Email, os.Stdout); err != nil {
		return err
	}
	if err := validate.Email(payload.Email); err != nil {
		return err
	}
	if payload.Address, err = GetOptionalText(a.reader, "Address ["+overview.Address+"]", overview.Address, os.Stdout); err != nil {
		return err
	}

	if err := a.shelters.Update(ctx, payload); err != nil {
		return err
	}
	a.notifier.Success("", "Shelter updated.")
	return nil
}

// ---- membership ----

func (a *App) adminAdminList(ctx context.Context) error {
	admins, err := a.shelters.Admins(ctx)
	if err != nil {
		return err
	}
	for _, admin := range admins {
		owner := ""
		if admin.IsAdminOwner {
			owner = " (owner)"
		}
		printlnFn(fmt.Sprintf("#%d %s <%s>%s", admin.ID, admin.FullName, admin.Email, owner))
	}
	return nil
}

func (a *App) adminAdminAdd(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: admin admin-add <email>")
	}
	if err := validate.Email(args[0]); err != nil {
		return err
	}
	if err := a.shelters.AddAdmin(ctx, args[0]); err != nil {
		return err
	}
	a.notifier.Success("", "Administrator added.")
	return nil
}

func (a *App) adminAdminRemove(ctx context.Context, args []string) error {
	id, err := parseIDArg(args, "admin admin-rm <id>")
	if err != nil {
		return err
	}
	if err := a.shelters.RemoveAdmin(ctx, id); err != nil {
		return err
	}
	a.notifier.Success("", "Administrator removed.")
	return nil
}
