package sqlinline

const QInsertVolunteerApplication = `--sql 3b9a7c2e-5d41-4f08-8c6b-2a0d9e7f1b63
insert into volunteer_applications (full_name, email, area_of_interest, bio, resume_path)
values (?, ?, ?, ?, ?);
`

const QListVolunteerApplications = `--sql 7e4f1a8c-2b6d-49e3-a5c7-8d0b3f6e2a19
select id, full_name, email, area_of_interest, bio, resume_path, date_added
from volunteer_applications
order by date_added desc, id desc;
`
